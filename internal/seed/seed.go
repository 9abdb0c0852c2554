package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDemoData populates an empty database with a handful of demo
// records so the portal is browsable right after first startup.
func CreateDemoData(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM alumni").Scan(&count); err != nil {
		return fmt.Errorf("checking alumni count: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("alumni", count).Msg("Database already populated, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	alumni := []struct {
		name, email string
		year        int
		degree      string
		position    string
		company     string
		location    string
	}{
		{"Ahmed Khan", "ahmed.khan@example.com", 2018, "Computer Science", "Software Engineer", "Systems Limited", "Lahore"},
		{"Fatima Malik", "fatima.malik@example.com", 2020, "Business Administration", "Product Manager", "Careem", "Islamabad"},
		{"Usman Tariq", "usman.tariq@example.com", 2016, "Electrical Engineering", "Senior Engineer", "Siemens", "Karachi"},
	}

	var firstID int64
	for i, a := range alumni {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO alumni (name, email, graduation_year, degree, current_position, company, location)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			a.name, a.email, a.year, a.degree, a.position, a.company, a.location,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seeding alumni: %w", err)
		}
		if i == 0 {
			firstID = id
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO jobs (title, company, location, description, job_type, experience_level, category, posted_by, application_email)
		 VALUES
		 ('Backend Engineer', 'Systems Limited', 'Lahore', 'Build and operate Go services for our payments platform.', 'Full-time', 'Mid Level', 'Technology', $1, 'careers@systemsltd.com'),
		 ('Marketing Intern', 'Careem', 'Islamabad', 'Support the regional marketing team with campaign analytics.', 'Internship', 'Entry Level', 'Marketing', $1, 'jobs@careem.com')`,
		firstID,
	)
	if err != nil {
		return fmt.Errorf("seeding jobs: %w", err)
	}

	nextMonth := time.Now().AddDate(0, 1, 0)
	_, err = pool.Exec(ctx,
		`INSERT INTO events (title, description, date, time, location, category, max_attendees, organizer, organizer_email, is_featured)
		 VALUES
		 ('Annual Alumni Reunion', 'Reconnect with classmates and faculty at the main campus.', $1, '17:00', 'Namal Campus, Mianwali', 'networking', 300, 'Alumni Office', 'alumni@namal.edu.pk', TRUE),
		 ('Career Mentorship Workshop', 'Senior alumni share advice on early-career growth.', $2, '14:30', 'Virtual', 'career', 100, 'Career Services', 'careers@namal.edu.pk', FALSE)`,
		nextMonth, nextMonth.AddDate(0, 0, 14),
	)
	if err != nil {
		return fmt.Errorf("seeding events: %w", err)
	}

	lgr.Info().Msg("Demo data seeded.")
	return nil
}
