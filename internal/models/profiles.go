// internal/models/profiles.go
package models

// VisualStyleProfile 视觉风格静态档案
type VisualStyleProfile struct {
	Label          string   `json:"label"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	Keywords       []string `json:"keywords"`
	Pacing         string   `json:"pacing"` // 节奏标签
}

// EmotionProfile 情绪静态档案
type EmotionProfile struct {
	Label       string   `json:"label"`
	Keywords    []string `json:"keywords"`
	ClosingShot string   `json:"closing_shot"` // 收尾镜头描述
	MusicStyle  string   `json:"music_style"`
}
