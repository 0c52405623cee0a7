package session

import (
	"layerit/application/catalog"
)

// NavigateRequest 切换视图
type NavigateRequest struct {
	View string `json:"view" binding:"required"`
}

// AnswerRequest 回答当前问题
type AnswerRequest struct {
	Value string `json:"value" binding:"required"`
}

// QuizProgressResponse 测验进度
type QuizProgressResponse struct {
	Step     int                       `json:"step"`
	Total    int                       `json:"total"`
	Progress int                       `json:"progress"`
	Finished bool                      `json:"finished"`
	Question *catalog.QuestionResponse `json:"question,omitempty"`
}

// AnswerResponse 回答后的进度；完成时带上肤质结果
type AnswerResponse struct {
	Done   bool                      `json:"done"`
	Quiz   QuizProgressResponse      `json:"quiz"`
	Result *catalog.SkinTypeResponse `json:"result,omitempty"`
}

// SessionResponse 会话快照
type SessionResponse struct {
	ID         string                         `json:"id"`
	View       string                         `json:"view"`
	SkinType   string                         `json:"skin_type,omitempty"`
	Quiz       *QuizProgressResponse          `json:"quiz,omitempty"`
	Selected   []catalog.ProductResponse      `json:"selected"`
	Comparison *catalog.CompatibilityResponse `json:"comparison,omitempty"`
	Routine    []catalog.ProductResponse      `json:"routine"`
	Cards      []ProductCardResponse          `json:"cards"`
}

// ProductCardResponse 商品卡片在当前会话中的状态
type ProductCardResponse struct {
	ID        int  `json:"id"`
	Selected  bool `json:"selected"`
	InRoutine bool `json:"in_routine"`
	CanSelect bool `json:"can_select"`
}

// RoutineResponse routine 及两两兼容性报告
type RoutineResponse struct {
	Products    []catalog.ProductResponse       `json:"products"`
	Verdict     string                          `json:"verdict"`
	Pairs       []catalog.CompatibilityResponse `json:"pairs"`
	Conflicting int                             `json:"conflicting"`
}
