package handler

import (
	"context"
	"errors"
	"sort"
	"time"

	"jobhunt/internal/entity"

	"github.com/google/uuid"
)

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
	saved map[uuid.UUID][]uuid.UUID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users: make(map[uuid.UUID]*entity.User),
		saved: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByVerificationToken(_ context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	for _, user := range r.users {
		if user.VerificationToken != nil && *user.VerificationToken == tokenHash &&
			user.VerificationTokenExpires != nil && user.VerificationTokenExpires.After(now) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) SavedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), r.saved[userID]...), nil
}

func (r *memUserRepo) SavedJobs(_ context.Context, _ uuid.UUID) ([]entity.Job, error) {
	return nil, nil
}

func (r *memUserRepo) AddSavedJob(_ context.Context, userID, jobID uuid.UUID) error {
	r.saved[userID] = append(r.saved[userID], jobID)
	return nil
}

func (r *memUserRepo) RemoveSavedJob(_ context.Context, userID, jobID uuid.UUID) error {
	kept := r.saved[userID][:0]
	for _, id := range r.saved[userID] {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	r.saved[userID] = kept
	return nil
}

type memJobRepo struct {
	jobs map[uuid.UUID]*entity.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[uuid.UUID]*entity.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *entity.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *memJobRepo) sorted() []entity.Job {
	out := make([]entity.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *memJobRepo) List(_ context.Context, limit, offset int) ([]entity.Job, error) {
	all := r.sorted()
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memJobRepo) ListAll(_ context.Context) ([]entity.Job, error) {
	return r.sorted(), nil
}

func (r *memJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *memJobRepo) Update(_ context.Context, job *entity.Job) error {
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.jobs, id)
	return nil
}

type memEmailSender struct {
	tokens          []string
	otps            []string
	supportMessages []string
}

func (s *memEmailSender) SendVerificationEmail(_ context.Context, _, _, token string) error {
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *memEmailSender) SendPasswordResetOTP(_ context.Context, _, _, otp string) error {
	s.otps = append(s.otps, otp)
	return nil
}

func (s *memEmailSender) SendSupportMessage(_ context.Context, fromEmail, message string) error {
	s.supportMessages = append(s.supportMessages, fromEmail+": "+message)
	return nil
}
