package result

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrPanic matches every *PanicError.
var ErrPanic = errors.New("recovered from panic")

// PanicError is a recovered panic. If the panic value was an error, it stays in the chain.
type PanicError struct {
	Name  string
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v: %+v", e.Name, ErrPanic, e.Value)
}

func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// RecoverToErrorVar recovers and places the recovered error into the given variable.
// Must be deferred directly.
func RecoverToErrorVar(name string, err *error) {
	if p := recover(); p != nil {
		log.WithField("name", name).Debugf("recovered: %v", p)
		*err = &PanicError{Name: name, Value: p}
	}
}

// RecoverToLog in case of panic just logs it.
func RecoverToLog(name string) {
	if p := recover(); p != nil {
		log.WithField("name", name).Errorf("recovered: %+v", p)
	}
}
