package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"log/slog"

	"team-calendar/internal/clients/nager"
	"team-calendar/internal/domain/models"
	v1 "team-calendar/internal/http/v1"
	"team-calendar/internal/lib/migrator"
	"team-calendar/internal/repo"
	"team-calendar/internal/service"
)

type TestServer struct {
	DB       *sqlx.DB
	Server   *httptest.Server
	Upstream *httptest.Server

	mu            sync.Mutex
	failCountries map[string]bool
}

func NewTestServer() (*TestServer, error) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = "host=localhost port=5432 user=postgres password=postgres dbname=teamcalendar_db sslmode=disable"
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	if err := migrator.RunMigrations(dbURL, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &TestServer{
		DB:            db,
		failCountries: make(map[string]bool),
	}

	// Stub of the Nager.Date upstream: one holiday per country, or a 500
	// for countries marked as failing.
	s.Upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 3 || parts[0] != "PublicHolidays" {
			http.NotFound(w, r)
			return
		}
		year, countryCode := parts[1], parts[2]

		s.mu.Lock()
		failing := s.failCountries[countryCode]
		s.mu.Unlock()

		if failing {
			http.Error(w, "upstream unavailable", http.StatusInternalServerError)
			return
		}

		holidays := []models.Holiday{
			{
				Date:        year + "-01-01",
				LocalName:   "New Year",
				Name:        "New Year's Day",
				CountryCode: countryCode,
				Fixed:       true,
				Global:      true,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(holidays)
	}))

	memberRepo := repo.NewMemberRepo(db)
	timeOffRepo := repo.NewTimeOffRepo(db)
	rotationRepo := repo.NewRotationRepo(db)
	holidayClient := nager.New(s.Upstream.URL, 5*time.Second)

	deps := v1.RouterDependencies{
		MemberService:   service.NewMemberService(log, memberRepo),
		TimeOffService:  service.NewTimeOffService(log, timeOffRepo),
		RotationService: service.NewRotationService(log, rotationRepo),
		HolidayService:  service.NewHolidayService(log, holidayClient),
		StaticDir:       "testdata",
	}

	r := chi.NewRouter()
	v1.SetupRoutes(r, &deps, log)

	s.Server = httptest.NewServer(r)

	return s, nil
}

// FailCountry makes the stubbed upstream answer 500 for one country.
func (s *TestServer) FailCountry(countryCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCountries[countryCode] = true
}

func (s *TestServer) LoadFixtures() error {
	tables := []string{"time_off_entries", "team_members", "on_call_rotations"}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("TRUNCATE %s", table))
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	fixtures := `
		INSERT INTO team_members(id, name) VALUES
			(1, 'Bela'),
			(2, 'Anna'),
			(3, 'Csaba');

		INSERT INTO time_off_entries(id, member_id, type, start_date, end_date, notes) VALUES
			(1, 1, 'vacation', '2025-08-01', '2025-08-10', 'summer trip'),
			(2, 2, 'sick', '2025-09-15', '2025-09-16', NULL),
			(3, 1, 'vacation', '2025-07-01', '2025-07-05', NULL);
	`

	_, err := s.DB.Exec(fixtures)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	return nil
}

func (s *TestServer) Close() {
	s.Server.Close()
	s.Upstream.Close()
	s.DB.Close()
}
