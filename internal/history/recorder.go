package history

import (
	"github.com/google/uuid"

	"github.com/Zuo-Peng/roman-calc/internal/calc"
	"github.com/Zuo-Peng/roman-calc/internal/numeral"
)

// Recorder stores the evaluations of one interactive session.
type Recorder struct {
	db        *DB
	sessionID string
}

func NewRecorder(db *DB) *Recorder {
	return &Recorder{db: db, sessionID: uuid.NewString()}
}

func (r *Recorder) SessionID() string { return r.sessionID }

// Record stores one evaluation. evalErr is the evaluator's error, if any.
func (r *Recorder) Record(expression string, res calc.Result, evalErr error) error {
	e := Entry{
		SessionID:  r.sessionID,
		Expression: expression,
	}
	if evalErr != nil {
		e.Error = evalErr.Error()
	} else {
		e.Result = res.Text
	}
	if res.System != numeral.Invalid {
		e.System = res.System.String()
	}

	_, err := r.db.Insert(e)
	return err
}
