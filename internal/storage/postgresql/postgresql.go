package postgresql

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Storage struct {
	db *sqlx.DB
}

func Init(databaseURL string) *Storage {
	const op = "storage.postgresql.Init"

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to open db: %v", op, err))
	}

	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("%s: failed to ping db: %v", op, err))
	}

	return &Storage{db: db}
}

func (s *Storage) GetDB() *sqlx.DB {
	return s.db
}

func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
