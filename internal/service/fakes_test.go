package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"jobhunt/internal/entity"

	"github.com/google/uuid"
)

// ---- in-memory user repository ----

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	saved map[uuid.UUID][]uuid.UUID
	jobs  *fakeJobRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*entity.User),
		saved: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
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

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByVerificationToken(_ context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	for _, user := range r.users {
		if user.VerificationToken == nil || user.VerificationTokenExpires == nil {
			continue
		}
		if *user.VerificationToken == tokenHash && user.VerificationTokenExpires.After(now) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("user missing")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SavedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), r.saved[userID]...), nil
}

func (r *fakeUserRepo) SavedJobs(ctx context.Context, userID uuid.UUID) ([]entity.Job, error) {
	var jobs []entity.Job
	for _, id := range r.saved[userID] {
		if r.jobs == nil {
			continue
		}
		job, _ := r.jobs.FindByID(ctx, id)
		if job != nil {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *fakeUserRepo) AddSavedJob(_ context.Context, userID, jobID uuid.UUID) error {
	r.saved[userID] = append(r.saved[userID], jobID)
	return nil
}

func (r *fakeUserRepo) RemoveSavedJob(_ context.Context, userID, jobID uuid.UUID) error {
	kept := r.saved[userID][:0]
	for _, id := range r.saved[userID] {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	r.saved[userID] = kept
	return nil
}

// ---- in-memory job repository ----

type fakeJobRepo struct {
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entity.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *entity.Job) error {
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

func (r *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) sorted() []entity.Job {
	out := make([]entity.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeJobRepo) List(_ context.Context, limit, offset int) ([]entity.Job, error) {
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

func (r *fakeJobRepo) ListAll(_ context.Context) ([]entity.Job, error) {
	return r.sorted(), nil
}

func (r *fakeJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *entity.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return errors.New("job missing")
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.jobs, id)
	return nil
}

// ---- notifier ----

type sentEmail struct {
	Name    string
	Email   string
	Token   string
	OTP     string
	Message string
}

type fakeEmailSender struct {
	verifications []sentEmail
	otps          []sentEmail
	support       []sentEmail
	failNext      bool
}

func (s *fakeEmailSender) SendVerificationEmail(_ context.Context, name, email, token string) error {
	if s.failNext {
		s.failNext = false
		return errors.New("delivery failed")
	}
	s.verifications = append(s.verifications, sentEmail{Name: name, Email: email, Token: token})
	return nil
}

func (s *fakeEmailSender) SendPasswordResetOTP(_ context.Context, name, email, otp string) error {
	if s.failNext {
		s.failNext = false
		return errors.New("delivery failed")
	}
	s.otps = append(s.otps, sentEmail{Name: name, Email: email, OTP: otp})
	return nil
}

func (s *fakeEmailSender) SendSupportMessage(_ context.Context, fromEmail, message string) error {
	if s.failNext {
		s.failNext = false
		return errors.New("delivery failed")
	}
	s.support = append(s.support, sentEmail{Email: fromEmail, Message: message})
	return nil
}

func (s *fakeEmailSender) lastVerificationToken() string {
	if len(s.verifications) == 0 {
		return ""
	}
	return s.verifications[len(s.verifications)-1].Token
}

func (s *fakeEmailSender) lastOTP() string {
	if len(s.otps) == 0 {
		return ""
	}
	return s.otps[len(s.otps)-1].OTP
}

// ---- clock ----

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// ---- security log ----

type fakeSecurityLogRepo struct {
	entries []entity.SecurityLog
}

func (r *fakeSecurityLogRepo) Log(_ context.Context, log *entity.SecurityLog) error {
	r.entries = append(r.entries, *log)
	return nil
}
