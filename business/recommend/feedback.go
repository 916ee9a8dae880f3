package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"runGuard/domain"
	"runGuard/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// share of the previous value kept by each update
	emaRetain = 0.8
	emaLearn  = 0.2
	maxRating = 5.0
)

// FeedbackLearner folds post-run ratings into a runner's learned preferences.
type FeedbackLearner struct {
	profileRepo  ProfileRepository
	feedbackRepo FeedbackRepository
	validate     *validator.Validate
	locks        *keyedMutex
	now          func() time.Time
}

func NewFeedbackLearner(
	profileRepo ProfileRepository,
	feedbackRepo FeedbackRepository,
	validate *validator.Validate,
) *FeedbackLearner {
	return &FeedbackLearner{
		profileRepo:  profileRepo,
		feedbackRepo: feedbackRepo,
		validate:     validate,
		locks:        newKeyedMutex(),
		now:          time.Now,
	}
}

// RecordFeedback applies the ratings to the user's profile and returns the
// saved profile. On a save failure nothing is written and the stored profile
// keeps its previous values.
func (l *FeedbackLearner) RecordFeedback(
	ctx context.Context,
	userID string,
	routeID string,
	ratings domain.FeedbackRatings,
) (domain.UserPreferenceProfile, error) {

	if err := ctx.Err(); err != nil {
		return domain.UserPreferenceProfile{}, fmt.Errorf("context error: %w", err)
	}
	if userID == "" || routeID == "" {
		return domain.UserPreferenceProfile{}, fmt.Errorf("%w: user id and route id are required", domain.ErrInvalidInput)
	}
	if err := l.validate.Struct(ratings); err != nil {
		return domain.UserPreferenceProfile{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	unlock := l.locks.Lock(userID)
	defer unlock()

	stored, err := l.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		FeedbackUpdatesTotal.WithLabelValues("data_unavailable").Inc()
		return domain.UserPreferenceProfile{}, fmt.Errorf("%w: load profile: %w", domain.ErrDataUnavailable, err)
	}

	profile := domain.NewDefaultProfile(userID)
	if stored != nil {
		profile = sanitizeLearned(*stored)
	}

	updated := ApplyFeedback(profile, ratings)
	updated.UpdatedAt = l.now()

	if err := l.profileRepo.SaveProfile(ctx, updated); err != nil {
		FeedbackUpdatesTotal.WithLabelValues("persist_failure").Inc()
		return domain.UserPreferenceProfile{}, fmt.Errorf("%w: %w", domain.ErrPersistFailure, err)
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("route_feedback",
		"trace_id", tid,
		"user_id", userID,
		"route_id", routeID,
		"overall", ratings.Overall,
		"preferred_difficulty", updated.PreferredDifficulty,
		"safety_priority", updated.SafetyPriority,
		"scenery_priority", updated.SceneryPriority,
	)

	if l.feedbackRepo != nil {
		entry := domain.RouteFeedback{
			ID:         uuid.NewString(),
			UserID:     userID,
			RouteID:    routeID,
			Overall:    ratings.Overall,
			Difficulty: ratings.Difficulty,
			Safety:     ratings.Safety,
			Scenery:    ratings.Scenery,
			CreatedAt:  l.now(),
		}
		if err := l.feedbackRepo.SaveFeedback(ctx, entry); err != nil {
			logger.Warn("failed to append feedback log", "trace_id", tid, "user_id", userID, "route_id", routeID, "error", err)
		}
	}

	FeedbackUpdatesTotal.WithLabelValues("applied").Inc()
	return updated, nil
}

// ApplyFeedback returns the profile after one EMA step per rated dimension.
// Unrated dimensions (0) are left untouched.
func ApplyFeedback(p domain.UserPreferenceProfile, r domain.FeedbackRatings) domain.UserPreferenceProfile {
	weight := float64(r.Overall) / maxRating

	p.PreferredDifficulty = emaUpdate(p.PreferredDifficulty, r.Difficulty, weight)
	p.SafetyPriority = emaUpdate(p.SafetyPriority, r.Safety, weight)
	p.SceneryPriority = emaUpdate(p.SceneryPriority, r.Scenery, weight)

	if r.Difficulty != 0 {
		p.DifficultyBand = domain.BandForDifficulty(int(p.PreferredDifficulty + 0.5))
	}
	return p
}

func emaUpdate(old, observed, weight float64) float64 {
	if observed == 0 {
		return old
	}
	return clamp(old*emaRetain+observed*weight*emaLearn, domain.PreferenceMin, domain.PreferenceMax)
}

// sanitizeLearned puts learned values from older rows back in range; unset values take the default.
func sanitizeLearned(p domain.UserPreferenceProfile) domain.UserPreferenceProfile {
	fix := func(v float64) float64 {
		if v == 0 {
			return domain.PreferenceDefault
		}
		return clamp(v, domain.PreferenceMin, domain.PreferenceMax)
	}
	p.PreferredDifficulty = fix(p.PreferredDifficulty)
	p.SafetyPriority = fix(p.SafetyPriority)
	p.SceneryPriority = fix(p.SceneryPriority)
	return p
}

// keyedMutex serialises read-modify-write cycles per user.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refLock)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
