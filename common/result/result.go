package result

import "fmt"

// Result represents the result of a function execution
type Result struct {
	Code    ErrorCode
	Message string
	Log     []string
}

// IsOK indicates if the execution succeeded
func (res Result) IsOK() bool {
	return res.Code == CodeOK
}

// IsError indicates if the execution results in an error
func (res Result) IsError() bool {
	return res.Code != CodeOK
}

// String returns the string representation of the result
func (res Result) String() string {
	return fmt.Sprintf("Result{code:%v, message:%v}", res.Code, res.Message)
}

// Error implements the error interface so a failed Result can be bubbled up
// through code paths that return error.
func (res Result) Error() string {
	return fmt.Sprintf("%v: %v", res.Code, res.Message)
}

// WithErrorCode attach the error code to the result
func (res Result) WithErrorCode(code ErrorCode) Result {
	res.Code = code
	return res
}

// WithMessage replaces the message of the result
func (res Result) WithMessage(msgFormat string, a ...interface{}) Result {
	res.Message = fmt.Sprintf(msgFormat, a...)
	return res
}

// AppendLog adds an execution log line
func (res Result) AppendLog(line string) Result {
	res.Log = append(res.Log, line)
	return res
}

// -------------- Constructors -------------- //

// OK represents the success result
var OK = Result{Code: CodeOK}

// OKWith returns a success result carrying an informational message
func OKWith(msgFormat string, a ...interface{}) Result {
	return Result{
		Code:    CodeOK,
		Message: fmt.Sprintf(msgFormat, a...),
	}
}

// Error returns an error result
func Error(msgFormat string, a ...interface{}) Result {
	msg := fmt.Sprintf(msgFormat, a...)
	return Result{
		Code:    CodeGenericError,
		Message: msg,
	}
}

// ErrorWithCode returns an error result with the given code
func ErrorWithCode(code ErrorCode, msgFormat string, a ...interface{}) Result {
	return Error(msgFormat, a...).WithErrorCode(code)
}

// FromError converts err into a Result. A nil error maps to OK, and an error
// that already is a Result is returned as is.
func FromError(err error) Result {
	if err == nil {
		return OK
	}
	if res, ok := err.(Result); ok {
		return res
	}
	return Error("%v", err)
}

// PrependLog adds an execution log line ahead of the existing ones
func (res Result) PrependLog(line string) Result {
	res.Log = append([]string{line}, res.Log...)
	return res
}
