// internal/services/storyboard_service.go
package services

import (
	"math"
	"regexp"
	"strconv"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// StoryboardService 分镜规划器：把总时长切分为带机位元数据的镜头序列
// 内容槽位此阶段留空，由脚本组装器填充
type StoryboardService struct{}

// NewStoryboardService 创建分镜规划服务
func NewStoryboardService() *StoryboardService {
	return &StoryboardService{}
}

const (
	// DefaultDurationSec 时长标签解析失败时的默认秒数
	DefaultDurationSec = 30
	// MinShotCount 镜头数下限，超短时长也保证足够的叙事切分
	MinShotCount = 6
	// nominalShotSec 名义单镜头时长（秒）
	nominalShotSec = 5
	// sceneBuckets 场景分段数，对应字母A-E
	sceneBuckets = 5
)

var durationPattern = regexp.MustCompile(`([0-9]+)`)

// ParseDurationSec 从 "30s" / "60秒" 这类时长标签解析秒数
func ParseDurationSec(durationLabel string) int {
	match := durationPattern.FindStringSubmatch(durationLabel)
	if match == nil {
		return DefaultDurationSec
	}
	sec, err := strconv.Atoi(match[1])
	if err != nil || sec < 1 {
		return DefaultDurationSec
	}
	return sec
}

// Plan 生成镜头序列
// 不变式：镜头时间区间连续无缝覆盖[0, 总时长]；
// 产品露出镜头数 = round(镜头数 * 露出比)，且分配给序号最小的镜头
func (s *StoryboardService) Plan(durationLabel string, visibilityPercent int) []models.Shot {
	seconds := ParseDurationSec(durationLabel)

	shotCount := seconds / nominalShotSec
	if shotCount < MinShotCount {
		shotCount = MinShotCount
	}

	if visibilityPercent < 0 {
		visibilityPercent = 0
	}
	if visibilityPercent > 100 {
		visibilityPercent = 100
	}
	productShotCount := int(math.Round(float64(shotCount) * float64(visibilityPercent) / 100))

	shots := make([]models.Shot, 0, shotCount)
	for i := 0; i < shotCount; i++ {
		start := int(math.Round(float64(i) * float64(seconds) / float64(shotCount)))
		end := int(math.Round(float64(i+1) * float64(seconds) / float64(shotCount)))

		shot := models.Shot{
			Index:          i + 1,
			SceneLetter:    sceneLetter(i, shotCount),
			DurationSec:    end - start,
			StartSec:       start,
			EndSec:         end,
			ProductBearing: i < productShotCount,
			Speed:          "常速",
		}

		// 景别：首尾远景定调，产品镜头在特写与中景间交替，其余中景
		switch {
		case i == 0 || i == shotCount-1:
			shot.ShotType = "远景"
		case shot.ProductBearing && i%2 == 0:
			shot.ShotType = "特写"
		case shot.ProductBearing:
			shot.ShotType = "中景"
		default:
			shot.ShotType = "中景"
		}

		switch i {
		case 0:
			shot.CameraMovement = "缓慢推进"
			shot.CameraPosition = "固定机位"
		case shotCount - 1:
			shot.CameraMovement = "缓慢拉升"
			shot.CameraPosition = "手持/稳定器"
		default:
			shot.CameraMovement = "固定"
			shot.CameraPosition = "手持/稳定器"
		}

		shots = append(shots, shot)
	}

	return shots
}

// sceneLetter 按线性进度把镜头落进A-E五个场景分段
func sceneLetter(index, shotCount int) string {
	bucket := index * sceneBuckets / shotCount
	if bucket >= sceneBuckets {
		bucket = sceneBuckets - 1
	}
	return string(rune('A' + bucket))
}

// SceneLabel 返回场景分段字母的静态描述
func SceneLabel(letter string) string {
	if label, ok := sceneLabels[letter]; ok {
		return label
	}
	return "过渡空间"
}
