// internal/api/websocket.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/byqzydy/story-ad-sub000/internal/services"
	"github.com/byqzydy/story-ad-sub000/internal/utils"
)

// WebSocket 升级器配置
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 生产环境应做更严格的来源检查
		return true
	},
}

const (
	wsWriteTimeout = 10 * time.Second
	wsReadTimeout  = 120 * time.Second
)

// wsInbound 客户端发来的消息
type wsInbound struct {
	Message string                  `json:"message"`
	History []services.AgentMessage `json:"history,omitempty"`
}

// wsOutbound 回给客户端的消息
type wsOutbound struct {
	Type  string               `json:"type"` // "reply" / "error"
	Reply *services.AgentReply `json:"reply,omitempty"`
	Error string               `json:"error,omitempty"`
}

// AgentWebSocket 助理聊天的WebSocket入口
// 每个连接一问一答，服务端不在连接间共享任何状态
func (h *Handler) AgentWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Errorf("WebSocket升级失败: %v", err)
		return
	}
	defer conn.Close()

	for {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.GetLogger().Warnf("WebSocket异常断开: %v", err)
			}
			return
		}

		if inbound.Message == "" {
			writeWS(conn, wsOutbound{Type: "error", Error: "消息不能为空"})
			continue
		}

		reply, err := h.AgentService.SendMessage(c.Request.Context(), inbound.Message, inbound.History)
		if err != nil {
			writeWS(conn, wsOutbound{Type: "error", Error: err.Error()})
			continue
		}
		writeWS(conn, wsOutbound{Type: "reply", Reply: reply})
	}
}

func writeWS(conn *websocket.Conn, msg wsOutbound) {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		utils.GetLogger().Errorf("WebSocket写入失败: %v", err)
	}
}
