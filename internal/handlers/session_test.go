package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"roadmate-backend/internal/repository"

	"github.com/google/uuid"
)

type fakeAuthorizer struct {
	token string
	err   error
	calls int
}

func (f *fakeAuthorizer) Authorize(_ context.Context, userID uuid.UUID, deviceID, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return strings.Join([]string{f.token, userID.String(), deviceID}, "."), nil
}

func authBody(userID uuid.UUID) string {
	return fmt.Sprintf(
		`{"user_id":%q,"device_id":"device-1","hashed_password":"8ea9c7b1333371918d1b23ee6e768077"}`,
		userID,
	)
}

func TestAuthorizeSuccess(t *testing.T) {
	authorizer := &fakeAuthorizer{token: "sometoken"}
	h := NewSessionHandler(authorizer)
	userID := uuid.New()

	r := httptest.NewRequest("POST", "/authorization", strings.NewReader(authBody(userID)))
	body := do(t, h.Authorize, r)

	wantStatus(t, body, true)
	want := "sometoken." + userID.String() + ".device-1"
	if body["token"] != want {
		t.Errorf("want token %q, got %v", want, body["token"])
	}
}

func TestAuthorizeFailureIsUniform(t *testing.T) {
	// credential mismatch and storage fault read identically to the client
	for name, err := range map[string]error{
		"rejected": repository.ErrNotAuthorized,
		"fault":    errors.New("dial tcp: connection refused"),
	} {
		h := NewSessionHandler(&fakeAuthorizer{err: err})

		r := httptest.NewRequest("POST", "/authorization", strings.NewReader(authBody(uuid.New())))
		body := do(t, h.Authorize, r)

		wantStatus(t, body, false)
		if body["detail"] != detailAuthFailed {
			t.Errorf("%s: want uniform detail, got %v", name, body["detail"])
		}
	}
}

func TestAuthorizeBadInputNeverReachesService(t *testing.T) {
	cases := map[string]string{
		"bad uuid":    `{"user_id":"42","device_id":"device-1","hashed_password":"8ea9c7b1333371918d1b23ee6e768077"}`,
		"no device":   fmt.Sprintf(`{"user_id":%q,"hashed_password":"8ea9c7b1333371918d1b23ee6e768077"}`, uuid.New()),
		"no password": fmt.Sprintf(`{"user_id":%q,"device_id":"device-1"}`, uuid.New()),
		"not json":    `user_id=42`,
	}
	for name, payload := range cases {
		authorizer := &fakeAuthorizer{token: "sometoken"}
		h := NewSessionHandler(authorizer)

		r := httptest.NewRequest("POST", "/authorization", strings.NewReader(payload))
		body := do(t, h.Authorize, r)

		wantStatus(t, body, false)
		if body["detail"] != detailAuthFailed {
			t.Errorf("%s: want uniform detail, got %v", name, body["detail"])
		}
		if authorizer.calls != 0 {
			t.Errorf("%s: invalid input must not reach the service", name)
		}
	}
}
