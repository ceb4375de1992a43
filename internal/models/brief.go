// internal/models/brief.go
package models

// Audience 目标受众
type Audience struct {
	Gender string `json:"gender"` // 如 "女性为主" / "不限"
	Age    string `json:"age"`    // 如 "18-25" / "26-35"
}

// Brief 表示一次广告创意输入的完整参数集合
// 由调用方（UI层）构造，传入引擎后视为不可变
type Brief struct {
	ProductName        string   `json:"product_name"`
	ProductTone        string   `json:"product_tone"`        // 产品调性关键词，如 "温暖 人文"
	ProductDescription string   `json:"product_description"` // 产品卖点描述
	CoreConcept        string   `json:"core_concept"`        // 核心概念，30字以内
	EndingEmotion      string   `json:"ending_emotion"`      // 结尾情绪标签，如 "温暖希望"
	StoryPrompt        string   `json:"story_prompt"`        // 自由文本故事设定
	CharacterNames     []string `json:"character_names,omitempty"`
	CharacterNotes     []string `json:"character_notes,omitempty"`
	ArchetypeHint      string   `json:"archetype_hint,omitempty"` // 原型倾向提示
	ReferenceMedia     string   `json:"reference_media,omitempty"`
	Scene              string   `json:"scene,omitempty"`
	VisualStyle        string   `json:"visual_style"`       // 视觉风格标签
	Duration           string   `json:"duration"`           // 时长标签，如 "30s"
	AspectRatio        string   `json:"aspect_ratio"`       // 画幅标签，如 "9:16"
	Voiceover          bool     `json:"voiceover"`          // 是否有旁白
	ProductVisibility  int      `json:"product_visibility"` // 产品露出占比 0-100
	Audience           Audience `json:"audience"`
}
