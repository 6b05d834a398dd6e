package storage

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("duplicate key")
	ErrInvalidReference = errors.New("invalid reference")
)

// PostgreSQL 錯誤碼，參見 https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// sqlite 的方言沒有翻譯的錯誤只能從訊息判斷
var (
	errSQLiteUnique     = regexp.MustCompile(`UNIQUE constraint failed`)
	errSQLiteForeignKey = regexp.MustCompile(`FOREIGN KEY constraint failed`)
)

// TranslateError 把驅動層錯誤轉成本包的錯誤，原始錯誤仍保留在錯誤鏈中
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidReference):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
	case errSQLiteUnique.MatchString(err.Error()):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errSQLiteForeignKey.MatchString(err.Error()):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	return err
}
