package specification

import "gorm.io/gorm"

// TitleSearch filters records by a case-insensitive title substring.
// Using ILIKE for Postgres (case insensitive)
type TitleSearch struct {
	Query string
}

func (s TitleSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ?", pattern)
}

// FieldSearch filters by a case-insensitive substring over the given
// columns, OR-ed together. Columns come from the service-side lookup
// table, never from raw caller input.
type FieldSearch struct {
	Fields []string
	Query  string
}

func (s FieldSearch) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Fields) == 0 || s.Query == "" {
		return db
	}
	pattern := "%" + s.Query + "%"

	query := db
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, field := range s.Fields {
		if i == 0 {
			cond = cond.Where(field+" ILIKE ?", pattern)
		} else {
			cond = cond.Or(field+" ILIKE ?", pattern)
		}
	}
	return query.Where(cond)
}
