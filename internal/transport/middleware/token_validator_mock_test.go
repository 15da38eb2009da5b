package middleware

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateDeviceTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		ValidateDeviceToken []struct {
			Token string
		}
	}
	lockValidateDeviceToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateDeviceToken(token string) (uuid.UUID, error) {
	if mock.ValidateDeviceTokenFunc == nil {
		panic("tokenValidatorMock.ValidateDeviceTokenFunc: method is nil but tokenValidator.ValidateDeviceToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateDeviceToken.Lock()
	mock.calls.ValidateDeviceToken = append(mock.calls.ValidateDeviceToken, callInfo)
	mock.lockValidateDeviceToken.Unlock()
	return mock.ValidateDeviceTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateDeviceTokenCalls() []struct {
	Token string
} {
	mock.lockValidateDeviceToken.RLock()
	calls := mock.calls.ValidateDeviceToken
	mock.lockValidateDeviceToken.RUnlock()
	return calls
}
