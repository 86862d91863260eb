package storage

import (
	"database/sql"
	"encoding/json"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

// CareerStore persists the role catalog in SQLite. Criteria and list-valued
// metadata are serialized into *_json columns; scalar metadata gets real
// columns so listings can filter and sort without decoding.
type CareerStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*CareerStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &CareerStore{db: db}, nil
}

func (s *CareerStore) Close() error { return s.db.Close() }

func (s *CareerStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS careers (
  title TEXT PRIMARY KEY,
  salary_range TEXT NOT NULL DEFAULT '',
  growth_rate TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  employers_json TEXT NOT NULL DEFAULT '[]',
  key_skills_json TEXT NOT NULL DEFAULT '[]',
  match_criteria_json TEXT NOT NULL DEFAULT '{}',
  simple_criteria_json TEXT NOT NULL DEFAULT '{}'
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_careers_growth ON careers(growth_rate);`); err != nil {
		return err
	}
	return nil
}

func (s *CareerStore) CountCareers() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM careers`).Scan(&n)
	return n, err
}

// SeedCareers inserts the initial catalog without duplicating by title.
func (s *CareerStore) SeedCareers(careers []domain.CareerProfile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO careers
(title, salary_range, growth_rate, description, employers_json, key_skills_json, match_criteria_json, simple_criteria_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range careers {
		emp, _ := json.Marshal(c.Metadata.ExampleEmployers)
		ks, _ := json.Marshal(c.Metadata.KeySkills)
		mc, _ := json.Marshal(c.MatchCriteria)
		sc, _ := json.Marshal(c.SimpleCriteria)

		if _, err := stmt.Exec(
			c.Title, c.Metadata.SalaryRange, c.Metadata.GrowthRate, c.Metadata.Description,
			string(emp), string(ks), string(mc), string(sc),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *CareerStore) GetCareer(title string) (domain.CareerProfile, bool, error) {
	row := s.db.QueryRow(`
SELECT title, salary_range, growth_rate, description, employers_json, key_skills_json, match_criteria_json, simple_criteria_json
FROM careers WHERE title = ?
`, title)

	c, err := scanCareer(row)
	if err == sql.ErrNoRows {
		return domain.CareerProfile{}, false, nil
	}
	if err != nil {
		return domain.CareerProfile{}, false, err
	}
	return c, true, nil
}

func (s *CareerStore) ListCareers(limit, offset int) ([]domain.CareerProfile, int, error) {
	return s.ListCareersFiltered(limit, offset, "", "")
}

// ListCareersFiltered lists careers with an optional case-insensitive search
// over title and description. sortBy accepts title_asc and title_desc.
func (s *CareerStore) ListCareersFiltered(limit, offset int, search, sortBy string) ([]domain.CareerProfile, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := ""
	args := make([]any, 0, 4)
	if strings.TrimSpace(search) != "" {
		where = "WHERE LOWER(title) LIKE '%' || LOWER(?) || '%' OR LOWER(description) LIKE '%' || LOWER(?) || '%'"
		args = append(args, search, search)
	}

	orderSQL := "ORDER BY title ASC"
	if sortBy == "title_desc" {
		orderSQL = "ORDER BY title DESC"
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM careers "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsSQL := `
SELECT title, salary_range, growth_rate, description, employers_json, key_skills_json, match_criteria_json, simple_criteria_json
FROM careers
` + where + "\n" + orderSQL + "\nLIMIT ? OFFSET ?"

	rowsArgs := append(append([]any{}, args...), limit, offset)
	rows, err := s.db.Query(rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.CareerProfile
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCareer(row rowScanner) (domain.CareerProfile, error) {
	var c domain.CareerProfile
	var empJSON, ksJSON, mcJSON, scJSON string

	if err := row.Scan(
		&c.Title, &c.Metadata.SalaryRange, &c.Metadata.GrowthRate, &c.Metadata.Description,
		&empJSON, &ksJSON, &mcJSON, &scJSON,
	); err != nil {
		return domain.CareerProfile{}, err
	}

	_ = json.Unmarshal([]byte(empJSON), &c.Metadata.ExampleEmployers)
	_ = json.Unmarshal([]byte(ksJSON), &c.Metadata.KeySkills)
	_ = json.Unmarshal([]byte(mcJSON), &c.MatchCriteria)
	_ = json.Unmarshal([]byte(scJSON), &c.SimpleCriteria)

	return c, nil
}
