package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse는 모든 에러 응답의 JSON 형식입니다
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToErrorResponse는 에러를 HTTP 상태 코드와 응답 본문으로 변환합니다.
// Echo 에러는 원래 상태 코드를 유지하고, INTERNAL 에러의 내부 원인은 응답에 노출하지 않습니다.
func ToErrorResponse(err error) (int, ErrorResponse) {
	var appErr *AppError
	if !As(FromHTTPError(err), &appErr) {
		appErr = Internal(http.StatusText(http.StatusInternalServerError), err)
	}
	status := ToHTTPStatus(appErr.Code())
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		status = echoErr.Code
	}

	message := appErr.Message()
	if appErr.Code() == ErrInternal {
		message = http.StatusText(http.StatusInternalServerError)
	}

	return status, ErrorResponse{Error: message, Code: appErr.Code()}
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	status, body := ToErrorResponse(err)
	return echo.NewHTTPError(status, body)
}

// FromHTTPError는 Echo HTTP 에러를 포함한 모든 에러를 AppError로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return appErr
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg := http.StatusText(echoErr.Code)
		switch m := echoErr.Message.(type) {
		case string:
			msg = m
		case ErrorResponse:
			return NewAppError(m.Code, m.Error, err)
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, err)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}
