package authentication

// Session persistence for the CLI. The token lives in the OS keyring, never on disk.
import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "creatorhub-cli"
	sessionKey  = "session"
)

// ErrNotLoggedIn is returned when no session is stored.
var ErrNotLoggedIn = errors.New("not logged in: run `creatorhub auth login` first")

type StoredSession struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func StoreSession(s *StoredSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, sessionKey, string(data))
}

func GetSession() (*StoredSession, error) {
	value, err := keyring.Get(serviceName, sessionKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	var s StoredSession
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession is a no-op when nothing is stored.
func DeleteSession() error {
	err := keyring.Delete(serviceName, sessionKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
