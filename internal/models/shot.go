// internal/models/shot.go
package models

// Shot 表示分镜时间轴上的一个镜头
// 时间区间 [StartSec, EndSec] 在整个镜头列表上连续无缝覆盖 [0, 总时长]
type Shot struct {
	Index          int    `json:"index"`           // 从1开始的镜头序号
	SceneLetter    string `json:"scene_letter"`    // 场景分段 A-E
	DurationSec    int    `json:"duration_sec"`    // 本镜头时长（秒）
	StartSec       int    `json:"start_sec"`       // 累计起点
	EndSec         int    `json:"end_sec"`         // 累计终点
	ShotType       string `json:"shot_type"`       // 景别：远景/中景/特写
	CameraPosition string `json:"camera_position"` // 机位
	CameraMovement string `json:"camera_movement"` // 运镜
	Speed          string `json:"speed"`           // 速率
	ProductBearing bool   `json:"product_bearing"` // 是否产品露出镜头

	// 以下内容槽位由脚本组装器填充，规划阶段留空
	Visual      string `json:"visual,omitempty"`       // 画面内容
	Dialogue    string `json:"dialogue,omitempty"`     // 台词/旁白
	SoundDesign string `json:"sound_design,omitempty"` // 声音设计
	MusicCue    string `json:"music_cue,omitempty"`    // 音乐提示
	ProductNote string `json:"product_note,omitempty"` // 产品植入说明
	ShootingTip string `json:"shooting_tip,omitempty"` // 拍摄提示
	PostNote    string `json:"post_note,omitempty"`    // 后期提示
	GenPrompt   string `json:"gen_prompt,omitempty"`   // AI生成提示词（英文）
}
