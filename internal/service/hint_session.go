package service

import (
	"context"
	"encoding/json"
	"time"

	"grammarlab/internal/cache"
	"grammarlab/internal/config"
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/engine"
	"grammarlab/internal/logger"
	"grammarlab/internal/util"

	"go.uber.org/zap"
)

// HintService manages per-session hint sequences.
type HintService interface {
	// StartSession builds a hint sequence for the question and stores it
	// under a fresh session ID.
	StartSession(ctx context.Context, req *dto.StartHintSessionRequest) (*dto.HintSessionResponse, error)

	// NextHint advances the stored sequence and returns the revealed hint,
	// or an exhausted response once nothing is left.
	NextHint(ctx context.Context, sessionID string) (*dto.HintResponse, error)
}

// hintSessionState is the cached JSON payload for one hint session.
type hintSessionState struct {
	QuestionID string                 `json:"question_id"`
	Sequence   *domain.HintSequence   `json:"sequence"`
	Profile    *domain.LearnerProfile `json:"profile,omitempty"`
}

type hintService struct {
	questions domain.QuestionRepository
	store     domain.Cache
	sequencer *engine.HintSequencer
	tokens    TokenService
	engineCfg config.EngineConfig
}

// NewHintService creates a new instance of hintService.
// tokens may be nil; sessions then carry no bearer token.
func NewHintService(
	questions domain.QuestionRepository,
	store domain.Cache,
	tokens TokenService,
	engineCfg config.EngineConfig,
) HintService {
	return &hintService{
		questions: questions,
		store:     store,
		sequencer: engine.NewHintSequencer(),
		tokens:    tokens,
		engineCfg: engineCfg,
	}
}

// StartSession implements HintService
func (s *hintService) StartSession(ctx context.Context, req *dto.StartHintSessionRequest) (*dto.HintSessionResponse, error) {
	question, err := s.questions.GetQuestionByID(req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	opts := engine.DefaultHintOptions()
	if s.engineCfg.MaxHints > 0 {
		opts.MaxHints = s.engineCfg.MaxHints
	}
	opts.EnableAdaptive = s.engineCfg.EnableAdaptive
	if req.MaxHints != nil {
		opts.MaxHints = *req.MaxHints
	}
	if req.Adaptive != nil {
		opts.EnableAdaptive = *req.Adaptive
	}

	seq := s.sequencer.GenerateHintSequence(question, opts)
	state := &hintSessionState{
		QuestionID: question.ID,
		Sequence:   seq,
		Profile:    profileFromDTO(req.Profile),
	}

	sessionID := util.NewULID()
	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	resp := &dto.HintSessionResponse{
		SessionID:  sessionID,
		QuestionID: question.ID,
		TotalHints: len(seq.Hints),
		MaxHints:   seq.MaxHints,
	}
	if s.tokens != nil {
		token, tokenErr := s.tokens.IssueSessionToken(sessionID)
		if tokenErr != nil {
			logger.Get().Warn("HintService: failed to issue session token",
				zap.Error(tokenErr),
				zap.String("sessionID", sessionID))
		} else {
			resp.Token = token
		}
	}
	return resp, nil
}

// NextHint implements HintService
func (s *hintService) NextHint(ctx context.Context, sessionID string) (*dto.HintResponse, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	hint := s.sequencer.NextHint(state.Sequence, state.Profile)
	resp := &dto.HintResponse{
		SessionID: sessionID,
		Remaining: state.Sequence.Remaining(),
		Exhausted: state.Sequence.Exhausted(),
	}
	if hint == nil {
		return resp, nil
	}

	// The cursor (and any adaptive reordering) must survive the request.
	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	resp.Hint = &dto.Hint{
		Content:       hint.Content,
		Category:      string(hint.Category),
		RevealPercent: hint.RevealPercent,
		Generated:     hint.Generated,
	}
	return resp, nil
}

func (s *hintService) loadState(ctx context.Context, sessionID string) (*hintSessionState, error) {
	raw, err := s.store.Get(ctx, cache.HintSessionKey(sessionID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("Failed to load hint session", err)
	}

	var state hintSessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, domain.NewInternalError("Failed to decode hint session", err)
	}
	if state.Sequence == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return &state, nil
}

func (s *hintService) saveState(ctx context.Context, sessionID string, state *hintSessionState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return domain.NewInternalError("Failed to encode hint session", err)
	}
	ttl := s.engineCfg.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	if err := s.store.Set(ctx, cache.HintSessionKey(sessionID), string(payload), ttl); err != nil {
		return domain.NewInternalError("Failed to store hint session", err)
	}
	return nil
}
