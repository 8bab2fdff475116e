package ws

import (
	"encoding/json"
	"sync"

	"github.com/bemove/bemove-backend/pkg/logger"
)

// Client 알림 스트림에 연결된 직원 세션
type Client struct {
	Hub    *Hub
	Conn   *Conn
	UserID uint
	Role   string
	Send   chan []byte
}

// Hub 직원 알림 브로드캐스트 허브. 클라이언트가 보내는 메시지는 없고
// 서버 이벤트(기구 등록 요청, 설문 접수, 공지)를 접속 세션에 밀어준다.
type Hub struct {
	// UserID -> 세션 목록 (멀티 디바이스 지원)
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan []byte, 1024),
	}
}

// Run Hub 실행
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			logger.Info("Notification client registered", map[string]interface{}{
				"user_id":        client.UserID,
				"total_sessions": len(h.clients[client.UserID]),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clientList, ok := h.clients[client.UserID]; ok {
				newList := make([]*Client, 0, len(clientList))
				for _, c := range clientList {
					if c != client {
						newList = append(newList, c)
					}
				}
				if len(newList) == 0 {
					delete(h.clients, client.UserID)
				} else {
					h.clients[client.UserID] = newList
				}
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for userID, clientList := range h.clients {
				for _, client := range clientList {
					select {
					case client.Send <- message:
					default:
						// Send 채널이 막혀있음 - 비동기로 정리
						go h.Unregister(client)
						logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
							"user_id": userID,
						})
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast 전체 접속 세션에 알림 전송. 채널이 가득 차면 메시지를 버린다.
func (h *Hub) Broadcast(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal notification payload", err, nil)
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	default:
		logger.Warn("Broadcast channel full, notification dropped", nil)
		return nil // 알림 손실은 허용 (저장된 알림으로 복구 가능)
	}
}

// Register 클라이언트 등록
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 클라이언트 등록 해제
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsUserOnline 사용자 온라인 여부 확인
func (h *Hub) IsUserOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}
