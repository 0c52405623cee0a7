/*
Package session Application Layer - 会话流程编排

进程内只有一个会话，所有操作由 mu 串行化。
聚合记录的事件在这里处理：先按事件写入持久化存储，再发布到事件总线。
*/
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"layerit/application/catalog"
	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/session"
	"layerit/domain/shared"
	"layerit/domain/skin"
	"layerit/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService 会话应用服务
type ApplicationService struct {
	mu        sync.Mutex
	sess      *session.Session
	products  product.Repository
	store     session.Store
	publisher shared.DomainEventPublisher
	matcher   *compat.Matcher
}

// NewApplicationService 创建服务；调用 Load 之前会话为空
func NewApplicationService(
	products product.Repository,
	store session.Store,
	publisher shared.DomainEventPublisher,
	matcher *compat.Matcher,
) *ApplicationService {
	if matcher == nil {
		matcher = compat.NewMatcher()
	}
	return &ApplicationService{
		sess:      session.New(matcher),
		products:  products,
		store:     store,
		publisher: publisher,
		matcher:   matcher,
	}
}

// Load 从存储恢复 routine 和肤质
// 损坏或缺失的数据按空处理，只记录警告
func (s *ApplicationService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.readState(ctx)
	if err != nil {
		return err
	}

	routine, missing, err := product.Resolve(ctx, s.products, st.RoutineIDs)
	if err != nil {
		return fmt.Errorf("resolve routine: %w", err)
	}
	if len(missing) > 0 {
		logger.FromContext(ctx).Warn("Persisted routine references unknown products",
			zap.Ints("missing_ids", missing))
	}

	s.sess = session.New(s.matcher)
	s.sess.Restore(st, routine)

	logger.FromContext(ctx).Info("Session restored",
		zap.String("session_id", s.sess.ID()),
		zap.Int("routine_size", len(routine)),
		zap.String("skin_type", st.SkinType.String()))
	return nil
}

func (s *ApplicationService) readState(ctx context.Context) (session.State, error) {
	var st session.State
	log := logger.FromContext(ctx)

	raw, ok, err := s.store.Get(ctx, session.RoutineKey)
	if err != nil {
		return st, fmt.Errorf("read %s: %w", session.RoutineKey, err)
	}
	if ok {
		ids, err := session.DecodeRoutine(raw)
		if err != nil {
			log.Warn("Ignoring corrupt persisted routine", zap.Error(err))
		} else {
			st.RoutineIDs = ids
		}
	}

	raw, ok, err = s.store.Get(ctx, session.SkinTypeKey)
	if err != nil {
		return st, fmt.Errorf("read %s: %w", session.SkinTypeKey, err)
	}
	if ok && raw != "" {
		t, err := skin.Parse(raw)
		if err != nil {
			log.Warn("Ignoring invalid persisted skin type", zap.String("value", raw))
		} else {
			st.SkinType = t
		}
	}
	return st, nil
}

// Snapshot 当前会话状态
func (s *ApplicationService) Snapshot(ctx context.Context) *SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(ctx)
}

// snapshot 会话快照加上每个商品卡片的状态，调用方必须持有 mu
func (s *ApplicationService) snapshot(ctx context.Context) *SessionResponse {
	resp := toSessionResponse(s.sess)
	products, err := s.products.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to list products for session cards", zap.Error(err))
		return resp
	}
	resp.Cards = toProductCards(s.sess, products)
	return resp
}

func (s *ApplicationService) Navigate(ctx context.Context, req NavigateRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := session.ParseView(req.View)
	if err != nil {
		return nil, err
	}
	if err := s.sess.Navigate(v); err != nil {
		return nil, err
	}
	return s.snapshot(ctx), nil
}

// AnswerQuiz 回答当前问题；最后一题完成后肤质被持久化
func (s *ApplicationService) AnswerQuiz(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sess.Memento()
	done, err := s.sess.AnswerQuiz(skin.Type(strings.ToLower(strings.TrimSpace(req.Value))))
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, before); err != nil {
		return nil, err
	}

	resp := &AnswerResponse{Done: done, Quiz: *toQuizProgress(s.sess.Attempt())}
	if done {
		result := catalog.ToSkinTypeResponse(s.sess.SkinType())
		resp.Result = &result
	}
	return resp, nil
}

// ToggleSelection 选中或取消选中商品
func (s *ApplicationService) ToggleSelection(ctx context.Context, id int) (*SessionResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sess.ToggleSelection(p); err != nil {
		return nil, err
	}
	return s.snapshot(ctx), nil
}

func (s *ApplicationService) Compare(ctx context.Context) (*catalog.CompatibilityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.sess.Compare()
	if err != nil {
		return nil, err
	}
	resp := toComparison(s.sess, res)
	return &resp, nil
}

func (s *ApplicationService) ClearComparison(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.ClearComparison()
}

func (s *ApplicationService) Routine(ctx context.Context) *RoutineResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toRoutineResponse(s.sess)
}

func (s *ApplicationService) AddToRoutine(ctx context.Context, id int) (*RoutineResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sess.Memento()
	if err := s.sess.AddToRoutine(p); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, before); err != nil {
		return nil, err
	}
	return toRoutineResponse(s.sess), nil
}

func (s *ApplicationService) RemoveFromRoutine(ctx context.Context, id int) (*RoutineResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sess.Memento()
	if err := s.sess.RemoveFromRoutine(id); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, before); err != nil {
		return nil, err
	}
	return toRoutineResponse(s.sess), nil
}

// Results 肤质结果页；还没做测验时返回 not found
func (s *ApplicationService) Results(ctx context.Context) (*catalog.SkinTypeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.sess.SkinType()
	if t == "" {
		return nil, shared.NewNotFoundError("skin_type", "no skin type yet, take the quiz first")
	}
	resp := catalog.ToSkinTypeResponse(t)
	return &resp, nil
}

// commit 持久化聚合事件对应的状态，然后发布事件
// 写入失败时会话回滚到 before，调用方可以直接重试
// 调用方必须持有 mu
func (s *ApplicationService) commit(ctx context.Context, before session.Memento) error {
	events := s.sess.PullEvents()
	log := logger.FromContext(ctx)

	for _, evt := range events {
		var err error
		switch e := evt.(type) {
		case *session.RoutineChangedEvent:
			err = s.store.Set(ctx, session.RoutineKey, session.EncodeRoutine(e.ProductIDs))
		case *session.SkinTypeDeterminedEvent:
			err = s.store.Set(ctx, session.SkinTypeKey, e.SkinType.String())
		}
		if err != nil {
			log.Error("Failed to persist session state",
				zap.String("event", evt.EventName()),
				zap.Error(err))
			s.sess.Revert(before)
			return fmt.Errorf("persist %s: %w", evt.EventName(), err)
		}
	}

	if s.publisher == nil {
		return nil
	}
	for _, evt := range events {
		if err := s.publisher.Publish(evt); err != nil {
			log.Warn("Event handler failed",
				zap.String("event", evt.EventName()),
				zap.String("event_id", evt.EventID()),
				zap.Error(err))
		}
	}
	return nil
}

