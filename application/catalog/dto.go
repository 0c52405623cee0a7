package catalog

// ListProductsQuery 商品列表过滤条件，空值表示不过滤
type ListProductsQuery struct {
	SkinType   string `form:"skin_type"`
	Ingredient string `form:"ingredient"`
	Brand      string `form:"brand"`
}

// ProductResponse 商品返回模型
type ProductResponse struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand"`
	Description        string   `json:"description"`
	Ingredients        []string `json:"ingredients"`
	SkinTypes          []string `json:"skin_types"`
	KeyIngredients     []string `json:"key_ingredients"`
	HasMoreIngredients bool     `json:"has_more_ingredients"`
}

// CompatibilityRequest 比较两个商品
type CompatibilityRequest struct {
	ProductA int `json:"product_a" binding:"required,min=1"`
	ProductB int `json:"product_b" binding:"required,min=1"`
}

// ConflictResponse 命中的冲突规则
type ConflictResponse struct {
	IngredientA string `json:"ingredient_a"`
	IngredientB string `json:"ingredient_b"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
}

// CompatibilityResponse 兼容性检查结果
type CompatibilityResponse struct {
	ProductA  *ProductResponse   `json:"product_a,omitempty"`
	ProductB  *ProductResponse   `json:"product_b,omitempty"`
	Verdict   string             `json:"verdict"`
	Conflicts []ConflictResponse `json:"conflicts"`
	Message   string             `json:"message"`
}

// OptionResponse 问题选项
type OptionResponse struct {
	Text  string `json:"text"`
	Value string `json:"value"`
	Emoji string `json:"emoji"`
}

// QuestionResponse 测验问题
type QuestionResponse struct {
	Index    int              `json:"index"`
	Question string           `json:"question"`
	Options  []OptionResponse `json:"options"`
}

// ScoreRequest 无状态评分
type ScoreRequest struct {
	Answers []string `json:"answers"`
}

// SkinTypeResponse 肤质及推荐护肤步骤
type SkinTypeResponse struct {
	SkinType           string         `json:"skin_type"`
	RecommendedRoutine []string       `json:"recommended_routine"`
	Tally              map[string]int `json:"tally,omitempty"`
}
