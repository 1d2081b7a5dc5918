package statement

import (
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/aclindsa/ofxgo"
)

// Account identifies the account an OFX statement is issued for.
type Account struct {
	BankID string
	AcctID string
}

// DefaultAccount is the demo checking account.
var DefaultAccount = Account{BankID: "077", AcctID: "00000001-9"}

// ExportOFX writes groups as an OFX bank statement response.
func ExportOFX(w io.Writer, groups []model.StatementGroup, acct Account, now time.Time) error {
	lines := Lines(groups)
	if len(lines) == 0 {
		return fmt.Errorf("statement is empty")
	}

	curdef, err := ofxgo.NewCurrSymbol("BRL")
	if err != nil {
		return fmt.Errorf("failed to create currency symbol: %w", err)
	}

	uid, err := ofxgo.RandomUID()
	if err != nil {
		return fmt.Errorf("failed to create transaction uid: %w", err)
	}

	start, end := lines[0].At, lines[0].At
	txns := make([]ofxgo.Transaction, 0, len(lines))
	for _, line := range lines {
		if line.At.Before(start) {
			start = line.At
		}
		if line.At.After(end) {
			end = line.At
		}
		txns = append(txns, toOFX(line))
	}

	stmt := ofxgo.StatementResponse{
		TrnUID: *uid,
		Status: ofxgo.Status{
			Code:     0,
			Severity: "INFO",
		},
		CurDef: *curdef,
		BankAcctFrom: ofxgo.BankAcct{
			BankID:   ofxgo.String(acct.BankID),
			AcctID:   ofxgo.String(acct.AcctID),
			AcctType: ofxgo.AcctTypeChecking,
		},
		BankTranList: &ofxgo.TransactionList{
			DtStart:      ofxgo.Date{Time: start},
			DtEnd:        ofxgo.Date{Time: end},
			Transactions: txns,
		},
		DtAsOf: ofxgo.Date{Time: now},
	}
	stmt.BalAmt.SetFrac64(Balance(groups), 100)

	resp := ofxgo.Response{
		Version: ofxgo.OfxVersion203,
		Signon: ofxgo.SignonResponse{
			Status: ofxgo.Status{
				Code:     0,
				Severity: "INFO",
			},
			DtServer: ofxgo.Date{Time: now},
			Language: "POR",
		},
		Bank: []ofxgo.Message{&stmt},
	}

	buf, err := resp.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal OFX: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write OFX: %w", err)
	}
	return nil
}

func toOFX(line model.Transaction) ofxgo.Transaction {
	trnType := ofxgo.TrnTypeDebit
	if line.Direction == model.DirectionIn {
		trnType = ofxgo.TrnTypeCredit
	}

	t := ofxgo.Transaction{
		TrnType:  trnType,
		DtPosted: ofxgo.Date{Time: line.At},
		FiTID:    ofxgo.String(line.ID),
		Name:     ofxgo.String(line.Counterparty),
		Memo:     ofxgo.String(line.Title),
	}
	t.TrnAmt.SetFrac64(line.SignedCents(), 100)
	return t
}
