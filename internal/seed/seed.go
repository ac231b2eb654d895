// Package seed implements the idempotent bootstrap: reference profiles,
// default skills, and the well-known default admin identity the browser
// extension depends on.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

const (
	// DefaultAdminID is the fixed identifier the extension is shipped with.
	// It must resolve to a user on every installation, which is why the
	// bootstrap falls back to an alternate email rather than give up when
	// the default email is already taken.
	DefaultAdminID = "6d1b9a6e-0000-4000-8000-3d9f6a1c2b4e"
	// DefaultAdminEmail is the bootstrap identity's primary email.
	DefaultAdminEmail = "admin@prospectmanager.com"
	// AlternateAdminEmail is used when DefaultAdminEmail already belongs to a
	// different user, so the email uniqueness constraint stays intact.
	AlternateAdminEmail = "admin+extension@prospectmanager.com"

	defaultAdminName = "Admin User"
)

// ReferenceProfiles is the fixed list upserted by name on every run, in order.
var ReferenceProfiles = []model.LinkedInProfile{
	{Name: "Sabeeh - CTO"},
	{Name: "Haris - CEO"},
	{Name: "Shuja - Dev"},
	{Name: "Muhammad Abuzar - BD"},
}

// DefaultSkills is the fixed skill list; existing names are skipped on rerun.
var DefaultSkills = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node.js",
	"Python",
	"Go",
	"DevOps",
	"UI/UX Design",
	"Project Management",
	"Sales",
	"Marketing",
}

// Seeder runs the bootstrap procedure. Safe to run any number of times and
// against any partial prior state; the first unrecoverable error aborts the
// whole run.
type Seeder struct {
	users    repository.UserRepository
	profiles repository.LinkedInProfileRepository
	skills   repository.SkillRepository
	log      *log.Logger
}

// New builds a Seeder. logger may be nil, in which case the default logger is used.
func New(users repository.UserRepository, profiles repository.LinkedInProfileRepository, skills repository.SkillRepository, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = log.Default()
	}
	return &Seeder{users: users, profiles: profiles, skills: skills, log: logger}
}

// Run executes all bootstrap steps in order.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedProfiles(ctx); err != nil {
		return fmt.Errorf("seed linkedin profiles: %w", err)
	}
	if err := s.seedSkills(ctx); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	if err := s.seedDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	return nil
}

// seedProfiles upserts each reference profile by unique name: create if
// absent, leave untouched if present.
func (s *Seeder) seedProfiles(ctx context.Context) error {
	for _, profile := range ReferenceProfiles {
		_, err := s.profiles.FindByName(ctx, profile.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check profile %q: %w", profile.Name, err)
		}
		p := profile
		if err := s.profiles.Create(ctx, &p); err != nil {
			return fmt.Errorf("create profile %q: %w", profile.Name, err)
		}
	}
	s.log.Printf("linkedin profiles seeded: %d reference entries", len(ReferenceProfiles))
	return nil
}

// seedSkills inserts the default skills, skipping names that already exist,
// and reports how many were new.
func (s *Seeder) seedSkills(ctx context.Context) error {
	inserted := 0
	for _, name := range DefaultSkills {
		_, err := s.skills.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check skill %q: %w", name, err)
		}
		if err := s.skills.Create(ctx, &model.Skill{Name: name}); err != nil {
			return fmt.Errorf("create skill %q: %w", name, err)
		}
		inserted++
	}
	s.log.Printf("skills seeded: %d new of %d candidates", inserted, len(DefaultSkills))
	return nil
}

// seedDefaultAdmin reconciles the default identity over two facts: does a row
// already exist at the fixed id, and does the default email belong to someone
// else. Three branches, no nesting:
//
//  1. id exists            -> already bootstrapped, leave untouched
//  2. email held elsewhere -> create at the fixed id with the alternate email
//  3. otherwise            -> create at the fixed id with the default email
//
// The created row never gets a password hash; that is assigned separately.
func (s *Seeder) seedDefaultAdmin(ctx context.Context) error {
	adminID := uuid.MustParse(DefaultAdminID)

	_, err := s.users.FindByID(ctx, adminID)
	if err == nil {
		s.log.Printf("default admin already exists at %s, leaving untouched", DefaultAdminID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check default admin id: %w", err)
	}

	email := DefaultAdminEmail
	existing, err := s.users.FindByEmail(ctx, DefaultAdminEmail)
	switch {
	case err == nil && existing.ID != adminID:
		email = AlternateAdminEmail
		s.log.Printf("%s is taken by user %s, bootstrapping with %s", DefaultAdminEmail, existing.ID, email)
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("check default admin email: %w", err)
	}

	admin := &model.User{
		ID:    adminID,
		Email: email,
		Name:  defaultAdminName,
		Role:  model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	s.log.Printf("default admin created: id=%s email=%s role=%s", admin.ID, admin.Email, admin.Role)
	s.log.Printf("use this user id when creating prospects from the extension: %s", admin.ID)
	return nil
}
