package helper

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Slugify turns free text into a URL slug. The admin client previews slugs
// with the same rules, so the steps here are load-bearing and ordered:
// NFKD-normalize, map & and + to "and", map / and _ to space, squash every
// other non-letter/non-number run (combining marks included) to a single
// space, trim, lowercase, then hyphenate the remaining whitespace.
func Slugify(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '&' || r == '+':
			b.WriteString(" and ")
		case r == '/' || r == '_':
			b.WriteByte(' ')
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		default:
			// combining marks left over from NFKD land here too, so
			// "é" splits into "e-..." exactly like the client preview
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(strings.ToLower(b.String()))
	return strings.Join(fields, "-")
}

// EnsureUniqueSlugCI keeps a slug unique (case-insensitive) within one
// table/column by suffixing -2, -3, ... scopeFn may be nil; when set it adds
// extra WHERE clauses (e.g. to exclude the row being updated).
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	baseSlug string,
	scopeFn func(*gorm.DB) *gorm.DB,
) (string, error) {
	slug := baseSlug
	lower := strings.ToLower(slug)

	for i := 0; i < 25; i++ {
		q := db.WithContext(ctx).Table(table)
		if scopeFn != nil {
			q = scopeFn(q)
		}

		var count int64
		if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), lower).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, i+2)
		lower = strings.ToLower(slug)
	}

	// extremely unlikely; fall back to a short time-based suffix
	slug = fmt.Sprintf("%s-%x", baseSlug, time.Now().UnixNano()&0xffff)
	return slug, nil
}
