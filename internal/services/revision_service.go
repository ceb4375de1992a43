// internal/services/revision_service.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// RevisionService 修订引擎：按反馈把既有脚本演进为新版本
// 输入文档视为不可变快照，每次调用返回全新文本并递增版本号，
// 同样的反馈调用两次会得到两个不同版本，这是有意为之
type RevisionService struct {
	// now 可注入，便于测试固定修订时间戳
	now func() time.Time
}

// NewRevisionService 创建修订服务
func NewRevisionService() *RevisionService {
	return &RevisionService{now: time.Now}
}

// 可识别的版本行前缀，中英文两种写法
var versionPrefixes = []string{"版本：V", "Version: V"}

// parseVersion 取文档当前版本号，无法解析时按V1处理
func parseVersion(document string) (prefix string, n int) {
	for _, p := range versionPrefixes {
		idx := strings.Index(document, p)
		if idx < 0 {
			continue
		}
		rest := document[idx+len(p):]
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end == 0 {
			continue
		}
		if v, err := strconv.Atoi(rest[:end]); err == nil {
			return p, v
		}
	}
	return versionPrefixes[0], 1
}

// pacingWords 全局意见中触发节奏注释的词
var pacingWords = []string{"节奏", "转场", "过渡", "太快", "太慢"}

// colorWords 全局意见中触发色调替换的词
var colorWords = []string{"色调", "颜色", "偏黄", "冷一点"}

// 色调替换目前只支持这一组固定literal的互换，
// 属于占位能力，扩成通用风格调整前不做静默泛化
const (
	colorSwapFrom = "暖黄色"
	colorSwapTo   = "冷蓝色"
)

// Revise 产出新版本文档
func (s *RevisionService) Revise(document string, feedback models.RevisionFeedback) string {
	prefix, current := parseVersion(document)
	next := current + 1

	revised := document
	var annotations []string

	// (a) 全局意见的启发式规则
	if feedback.GlobalNote != "" {
		if containsAny(feedback.GlobalNote, pacingWords) {
			annotations = append(annotations,
				fmt.Sprintf("节奏调整：%s（已按意见整体复核转场与镜头时长）", feedback.GlobalNote))
		}
		if containsAny(feedback.GlobalNote, colorWords) {
			revised = strings.ReplaceAll(revised, colorSwapFrom, colorSwapTo)
			annotations = append(annotations,
				fmt.Sprintf("色调调整：%s → %s", colorSwapFrom, colorSwapTo))
		}
		if len(annotations) == 0 {
			annotations = append(annotations, "整体意见："+feedback.GlobalNote)
		}
	}

	// (b) 结构化修改意见逐条注释
	for _, change := range feedback.SpecificChanges {
		switch change.Category {
		case "character", "角色":
			annotations = append(annotations,
				fmt.Sprintf("角色调整（%s）：%s", change.Target, change.Note))
		case "scene", "场景":
			annotations = append(annotations,
				fmt.Sprintf("场景调整（%s）：%s", change.Target, change.Note))
		default:
			annotations = append(annotations,
				fmt.Sprintf("调整（%s）：%s", change.Category, change.Note))
		}
	}

	// (c) 保留元素打上内联标记
	for _, keep := range feedback.KeepElements {
		if keep == "" {
			continue
		}
		revised = strings.Replace(revised, keep, keep+"[保留]", 1)
	}

	// (d) 移除元素只做记录，不做破坏性删改
	for _, remove := range feedback.RemoveElements {
		if remove != "" {
			annotations = append(annotations, "待移除："+remove)
		}
	}

	// 替换版本行并追加修订记录
	oldToken := fmt.Sprintf("%s%d", prefix, current)
	newToken := fmt.Sprintf("%s%d", prefix, next)
	if strings.Contains(revised, oldToken) {
		revised = strings.Replace(revised, oldToken, newToken, 1)
	} else {
		// 文档里没有版本行时补一行，保证后续修订可解析
		revised = newToken + "\n" + revised
	}

	var b strings.Builder
	b.WriteString(revised)
	b.WriteString(fmt.Sprintf("\n---\n## 修订记录 %s（%s）\n",
		newToken, s.now().Format("2006-01-02 15:04")))
	for _, note := range annotations {
		b.WriteString("- " + note + "\n")
	}
	if len(annotations) == 0 {
		b.WriteString("- 常规版本迭代\n")
	}

	return b.String()
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
