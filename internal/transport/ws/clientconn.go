package ws

import (
	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/gomoku/internal/domain"
	"github.com/pkg/errors"
)

type client struct {
	conn *websocket.Conn
}

func newClient(conn *websocket.Conn) client {
	return client{conn: conn}
}

func (c client) WriteMessage(msg domain.Message) error {
	if err := c.conn.WriteJSON(msg); err != nil {
		return errors.WithMessage(err, "websocket conn write json")
	}
	return nil
}

func (c client) ReadMessage() (domain.Message, error) {
	var msg domain.Message
	err := c.conn.ReadJSON(&msg)
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return domain.Message{}, errors.WithMessage(domain.ErrConnectionClosed, closeErr.Error())
	}
	if err != nil {
		return domain.Message{}, errors.WithMessage(err, "websocket conn read json")
	}
	return msg, nil
}

func (c client) Close() {
	_ = c.conn.Close()
}
