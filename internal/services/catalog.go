// internal/services/catalog.go
package services

import "github.com/byqzydy/story-ad-sub000/internal/models"

// 本文件集中存放引擎的静态查找目录：叙事原型、概念/情绪评分规则、
// 视觉风格与情绪档案、角色名库。全部为进程启动即固定的只读数据，
// 任何服务不得修改。

// DefaultArchetypeID 无任何关键词命中时的兜底原型
const DefaultArchetypeID = "她型"

// archetypeCatalog 叙事原型目录
// 切片顺序即目录插入顺序，分类打分平局时按该顺序取先出现者
var archetypeCatalog = []models.Archetype{
	{
		ID:       "她型",
		Keywords: []string{"孤独", "连接", "陪伴", "科技与情感", "治愈"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "林一",
				Role:        "孤独的都市人",
				Description: "{age}的独居者，习惯深夜独处，直到遇见{product}",
				Arc:         "从封闭孤独到重新与世界建立连接",
			},
			{
				Name:        "暖暖",
				Role:        "温柔的陪伴者",
				Description: "一个懂倾听的声音，总在恰当的时刻出现",
				Arc:         "从工具性存在到情感寄托",
			},
		},
	},
	{
		ID:       "黑客帝国型",
		Keywords: []string{"代码", "觉醒", "虚拟", "真相", "掌控"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "陈墨",
				Role:        "觉醒的程序员",
				Description: "{age}的技术从业者，在代码洪流中看见{product}打开的另一层世界",
				Arc:         "从被动执行到掌控规则",
			},
			{
				Name:        "先知",
				Role:        "引路人",
				Description: "看透系统本质的神秘向导",
				Arc:         "从旁观者到推动者",
			},
			{
				Name:        "特工",
				Role:        "秩序的化身",
				Description: "代表旧规则的阻力，反衬主角的突破",
				Arc:         "从压制到被超越",
			},
		},
	},
	{
		ID:       "盗梦空间型",
		Keywords: []string{"梦境", "层次", "悬念", "潜意识", "植入"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "唐临",
				Role:        "造梦师",
				Description: "{age}的创意工作者，用{product}在现实里搭建一层层惊喜",
				Arc:         "从设局者到被梦境打动的人",
			},
			{
				Name:        "阿守",
				Role:        "清醒的同伴",
				Description: "始终提醒主角哪一层才是现实",
				Arc:         "从怀疑到共同入梦",
			},
		},
	},
	{
		ID:       "阿甘正传型",
		Keywords: []string{"坚持", "奔跑", "纯粹", "岁月", "平凡"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "阿原",
				Role:        "认死理的普通人",
				Description: "{age}的普通人，认准一件事就不回头，{product}陪他跑过每一段路",
				Arc:         "平凡的坚持最终被岁月奖赏",
			},
			{
				Name:        "珍妮",
				Role:        "远方的牵挂",
				Description: "主角坚持的意义所在",
				Arc:         "从离开到归来",
			},
		},
	},
	{
		ID:       "星际穿越型",
		Keywords: []string{"亲情", "宇宙", "时间", "承诺", "希望"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "程远",
				Role:        "远行的父亲",
				Description: "{age}的父亲，为了承诺跨越距离，{product}是他与家之间的那根线",
				Arc:         "离开是为了回来",
			},
			{
				Name:        "小星",
				Role:        "等待的孩子",
				Description: "在原地长大的孩子，替父亲守着约定",
				Arc:         "从不解到理解",
			},
			{
				Name:        "老教授",
				Role:        "托付者",
				Description: "把希望交到主角手里的长者",
				Arc:         "从托付到释怀",
			},
		},
	},
	{
		ID:       "楚门的世界型",
		Keywords: []string{"真实", "突破", "发现", "边界", "出走"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "楚然",
				Role:        "被安排的人",
				Description: "{age}的上班族，某天借{product}看见了剧本之外的生活",
				Arc:         "从按部就班到推门而出",
			},
			{
				Name:        "导演",
				Role:        "幕后的安排者",
				Description: "维持既定剧本的声音",
				Arc:         "从掌控到目送",
			},
		},
	},
	{
		ID:       "爱乐之城型",
		Keywords: []string{"梦想", "浪漫", "遗憾", "音乐", "相遇"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "米亚",
				Role:        "追梦的人",
				Description: "{age}的追梦者，在无数次碰壁后，{product}记下了她没说出口的热爱",
				Arc:         "梦想与生活的和解",
			},
			{
				Name:        "塞白",
				Role:        "同路的知音",
				Description: "懂她的坚持也懂她的犹豫",
				Arc:         "从相遇到互相成全",
			},
		},
	},
	{
		ID:       "摔跤吧爸爸型",
		Keywords: []string{"奋斗", "家庭", "突破", "训练", "荣耀"},
		Templates: []models.CharacterTemplate{
			{
				Name:        "吉塔",
				Role:        "不服输的女儿",
				Description: "{age}的挑战者，把别人的质疑练成肌肉，{product}见证每一次加练",
				Arc:         "从被安排到为自己而战",
			},
			{
				Name:        "老马",
				Role:        "严厉的教练",
				Description: "嘴上不留情，暗地里整夜复盘",
				Arc:         "从严师到后盾",
			},
			{
				Name:        "对手",
				Role:        "镜子般的对手",
				Description: "逼出主角全部潜力的人",
				Arc:         "从轻视到致敬",
			},
		},
	},
}

// conceptRule 概念关键词评分规则（有序）
type conceptRule struct {
	Keyword   string
	Archetype string
	Weight    int
}

// conceptRules 核心概念包含关键词时为对应原型加分
var conceptRules = []conceptRule{
	{"代码", "黑客帝国型", 2},
	{"觉醒", "黑客帝国型", 2},
	{"虚拟", "黑客帝国型", 2},
	{"孤独", "她型", 2},
	{"连接", "她型", 2},
	{"陪伴", "她型", 2},
	{"梦境", "盗梦空间型", 2},
	{"悬念", "盗梦空间型", 2},
	{"坚持", "阿甘正传型", 2},
	{"奔跑", "阿甘正传型", 2},
	{"亲情", "星际穿越型", 2},
	{"承诺", "星际穿越型", 2},
	{"真实", "楚门的世界型", 2},
	{"突破", "楚门的世界型", 2},
	{"梦想", "爱乐之城型", 2},
	{"浪漫", "爱乐之城型", 2},
	{"奋斗", "摔跤吧爸爸型", 2},
	{"家庭", "摔跤吧爸爸型", 2},
}

// emotionRule 结尾情绪到主副原型的映射（主+3，副+1）
type emotionRule struct {
	Emotion   string
	Primary   string
	Secondary string
}

var emotionRules = []emotionRule{
	{"温暖希望", "她型", "阿甘正传型"},
	{"掌控自信", "黑客帝国型", "盗梦空间型"},
	{"惊喜好奇", "盗梦空间型", "楚门的世界型"},
	{"治愈平静", "阿甘正传型", "她型"},
	{"感动落泪", "星际穿越型", "摔跤吧爸爸型"},
	{"自由释然", "楚门的世界型", "星际穿越型"},
	{"浪漫憧憬", "爱乐之城型", "她型"},
	{"振奋激励", "摔跤吧爸爸型", "阿甘正传型"},
}

// complementMap 主原型到互补副原型的静态映射
// 副原型不参与评分，分类结果中恒有值
var complementMap = map[string]string{
	"她型":     "爱乐之城型",
	"黑客帝国型":  "盗梦空间型",
	"盗梦空间型":  "黑客帝国型",
	"阿甘正传型":  "星际穿越型",
	"星际穿越型":  "阿甘正传型",
	"楚门的世界型": "她型",
	"爱乐之城型":  "她型",
	"摔跤吧爸爸型": "阿甘正传型",
}

// warmArchetypes 判定"温暖/人文"调性配比时视为暖型的原型
var warmArchetypes = map[string]bool{
	"她型":    true,
	"阿甘正传型": true,
	"星际穿越型": true,
}

// visualStyleProfiles 视觉风格档案
var visualStyleProfiles = map[string]models.VisualStyleProfile{
	"电影感": {
		Label:          "电影感",
		PrimaryColor:   "暖黄色",
		SecondaryColor: "深褐色",
		Keywords:       []string{"浅景深", "胶片颗粒", "宽画幅"},
		Pacing:         "舒缓递进",
	},
	"赛博朋克": {
		Label:          "赛博朋克",
		PrimaryColor:   "霓虹紫",
		SecondaryColor: "电光蓝",
		Keywords:       []string{"高对比", "霓虹", "雨夜反光"},
		Pacing:         "快切强节奏",
	},
	"清新日系": {
		Label:          "清新日系",
		PrimaryColor:   "奶白色",
		SecondaryColor: "淡青色",
		Keywords:       []string{"过曝", "空气感", "自然光"},
		Pacing:         "轻盈跳跃",
	},
	"纪实风": {
		Label:          "纪实风",
		PrimaryColor:   "中性灰",
		SecondaryColor: "原木色",
		Keywords:       []string{"手持", "抓拍", "同期声"},
		Pacing:         "真实呼吸感",
	},
}

// defaultStyleProfile 未识别风格标签时的兜底档案
var defaultStyleProfile = models.VisualStyleProfile{
	Label:          "通用",
	PrimaryColor:   "暖黄色",
	SecondaryColor: "米白色",
	Keywords:       []string{"柔和", "干净"},
	Pacing:         "平稳",
}

// emotionProfiles 结尾情绪档案
var emotionProfiles = map[string]models.EmotionProfile{
	"温暖希望": {
		Label:       "温暖希望",
		Keywords:    []string{"微光", "拥抱", "晨曦"},
		ClosingShot: "人物望向窗外渐亮的天色，嘴角微微上扬",
		MusicStyle:  "钢琴铺底渐入弦乐",
	},
	"掌控自信": {
		Label:       "掌控自信",
		Keywords:    []string{"笃定", "俯瞰", "掌心"},
		ClosingShot: "人物转身面对镜头，眼神笃定，背景灯光次第亮起",
		MusicStyle:  "电子低音渐强收在重拍",
	},
	"感动落泪": {
		Label:       "感动落泪",
		Keywords:    []string{"相拥", "泪光", "回望"},
		ClosingShot: "两人相拥，镜头缓缓拉远化入暖光",
		MusicStyle:  "弦乐满奏后突然留白",
	},
	"惊喜好奇": {
		Label:       "惊喜好奇",
		Keywords:    []string{"睁大", "翻转", "揭晓"},
		ClosingShot: "人物先愣住再展颜，画面在笑声里定格",
		MusicStyle:  "轻快拨弦带一记风铃",
	},
	"治愈平静": {
		Label:       "治愈平静",
		Keywords:    []string{"深呼吸", "落日", "舒展"},
		ClosingShot: "人物闭眼深呼吸，环境声渐渐清晰",
		MusicStyle:  "环境音与极简钢琴",
	},
	"自由释然": {
		Label:       "自由释然",
		Keywords:    []string{"奔跑", "敞开", "远方"},
		ClosingShot: "人物跑向开阔处，镜头升起望向地平线",
		MusicStyle:  "鼓点推开后转明亮大调",
	},
	"浪漫憧憬": {
		Label:       "浪漫憧憬",
		Keywords:    []string{"星光", "对视", "心动"},
		ClosingShot: "两人对视一笑，城市灯火在背景虚化成光斑",
		MusicStyle:  "爵士钢琴加弱音小号",
	},
	"振奋激励": {
		Label:       "振奋激励",
		Keywords:    []string{"握拳", "冲线", "呐喊"},
		ClosingShot: "人物冲过终点回头呐喊，画面升格定格",
		MusicStyle:  "进行曲式鼓点收在最高点",
	},
}

// defaultEmotionProfile 未识别情绪标签时的兜底档案
var defaultEmotionProfile = models.EmotionProfile{
	Label:       "通用",
	Keywords:    []string{"微笑", "光"},
	ClosingShot: "人物微笑看向镜头，画面渐暗",
	MusicStyle:  "温和钢琴收尾",
}

// archetypeNameBanks 原型专属角色名库
var archetypeNameBanks = map[string][]string{
	"她型":     {"林一", "苏晚", "暖暖", "程岁", "乔安"},
	"黑客帝国型":  {"陈墨", "尼奥", "崔一", "白杨", "凌七"},
	"盗梦空间型":  {"唐临", "阿守", "梦珂", "陆离", "沈眠"},
	"阿甘正传型":  {"阿原", "珍妮", "大刘", "秦川", "老白"},
	"星际穿越型":  {"程远", "小星", "墨菲", "周野", "安和"},
	"楚门的世界型": {"楚然", "思薇", "阿真", "方外", "韩照"},
	"爱乐之城型":  {"米亚", "塞白", "何声", "蓝调", "乐瑶"},
	"摔跤吧爸爸型": {"吉塔", "老马", "巴比", "石头", "金花"},
}

// genericNameBank 通用角色名库，原型未识别或专属名用尽时使用
var genericNameBank = []string{"李想", "王晴", "张野", "刘一诺", "陈光", "赵朵", "孙乐", "周知"}

// ageBrackets 受众年龄标签到角色年龄描述的映射
var ageBrackets = map[string]string{
	"18-25": "二十出头",
	"26-35": "三十岁上下",
	"36-45": "四十岁左右",
	"46+":   "年过半百",
}

const defaultAgeBracket = "二十五岁左右"

// sceneLabels 场景分段字母对应的静态描述
var sceneLabels = map[string]string{
	"A": "开场空间：建立人物与日常环境",
	"B": "推进空间：矛盾或渴望浮现",
	"C": "转折空间：产品自然介入",
	"D": "高潮空间：情绪与产品价值汇合",
	"E": "收束空间：情绪落点与品牌定格",
}
