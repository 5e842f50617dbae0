package ownership

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	if err := Check(5, 5); err != nil {
		t.Errorf("owner must pass, got: %v", err)
	}

	if err := Check(5, 6); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for a foreign user, got: %v", err)
	}
}
