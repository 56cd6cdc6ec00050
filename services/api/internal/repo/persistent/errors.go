package persistent

import (
	"errors"
	"strings"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translateError maps gorm sentinels onto application error kinds. Other
// errors pass through for the caller to wrap.
func translateError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Wrap(apperror.KindConflict, "resource already exists", err)
	}
	return err
}

// orderBy resolves an API sort field through a column whitelist. Unknown
// fields fall back to created_at.
func orderBy(table string, columns map[string]string, p pagination.Params) clause.OrderByColumn {
	col, ok := columns[p.Sort]
	if !ok {
		col = "created_at"
	}
	return clause.OrderByColumn{
		Column: clause.Column{Table: table, Name: col},
		Desc:   p.Desc(),
	}
}

// likePattern builds a case-insensitive LIKE pattern portable across
// postgres, mysql and sqlite.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
