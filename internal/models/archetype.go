// internal/models/archetype.go
package models

// CharacterTemplate 原型自带的典型角色模板
type CharacterTemplate struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Arc         string `json:"arc"` // 角色弧线
}

// Archetype 叙事原型目录条目（借用经典影片的叙事DNA）
// 目录为进程级静态配置，启动后只读
type Archetype struct {
	ID        string              `json:"id"`
	Keywords  []string            `json:"keywords"`
	Templates []CharacterTemplate `json:"templates"` // 2-3个典型角色
}

// ArchetypeResult 原型分类结果
type ArchetypeResult struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	BlendRatio string `json:"blend_ratio"` // 主副原型配比标签，如 "70/30"
}
