// internal/models/script.go
package models

import "time"

// Character 表示一次生成中合成的广告角色
type Character struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	GenderAge   string `json:"gender_age"` // 性别/年龄占位描述
	Description string `json:"description"`
	Arc         string `json:"arc"`
}

// Cast 角色合成结果，四个切片长度相等且按位对齐
type Cast struct {
	Names        []string `json:"names"`
	Roles        []string `json:"roles"`
	Descriptions []string `json:"descriptions"`
	Arcs         []string `json:"arcs"`
}

// Characters 把Cast展开为角色列表
func (c *Cast) Characters() []Character {
	chars := make([]Character, len(c.Names))
	for i := range c.Names {
		chars[i] = Character{
			Name:        c.Names[i],
			Role:        c.Roles[i],
			GenderAge:   "待定",
			Description: c.Descriptions[i],
			Arc:         c.Arcs[i],
		}
	}
	return chars
}

// GenerateOptions 生成选项
type GenerateOptions struct {
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Version     int     `json:"version,omitempty"` // 省略时为1
}

// GenerateResult 脚本生成的返回结果
// Success为false时Script为空，调用方应提示重试而不是展示半成品
type GenerateResult struct {
	Success    bool        `json:"success"`
	Script     string      `json:"script,omitempty"`
	ShotList   []Shot      `json:"shot_list,omitempty"`
	Characters []Character `json:"characters,omitempty"`
	Archetype  string      `json:"archetype,omitempty"`
	Version    string      `json:"version"`
	Error      string      `json:"error,omitempty"`
}

// SpecificChange 结构化修改意见
type SpecificChange struct {
	Category string `json:"category"` // 如 "character" / "scene"
	Target   string `json:"target,omitempty"`
	Note     string `json:"note"`
}

// RevisionFeedback 修订反馈
type RevisionFeedback struct {
	VersionHint     string           `json:"version_hint,omitempty"`
	GlobalNote      string           `json:"global_note,omitempty"`
	SpecificChanges []SpecificChange `json:"specific_changes,omitempty"`
	KeepElements    []string         `json:"keep_elements,omitempty"`
	RemoveElements  []string         `json:"remove_elements,omitempty"`
}

// ScriptProject 一个广告项目的持久化状态
type ScriptProject struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Brief         Brief     `json:"brief"`
	ActiveVersion int       `json:"active_version"` // 0表示尚未生成
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
