package directory

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidClassification = errors.New("invalid classification")
	ErrDuplicateName         = errors.New("organization name already in use")
)

// isUniqueViolation recognizes the uniq_org_user_name conflict from both
// stores: postgres reports SQLSTATE 23505, the sqlite build reports a
// constraint failure string.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
