// Package nakama adapts the Nakama realtime socket to the client core:
// match data in, action requests out. The core never sees the wire
// format; it consumes Notifications and emits ActionRequests.
package nakama

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/heroiclabs/nakama-common/rtapi"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"goldenpotato/internal/app"
	"goldenpotato/internal/ports"
)

// Socket is a connected Nakama realtime session for one match.
type Socket struct {
	log  *zap.Logger
	conn *websocket.Conn

	// writeMu serializes outbound frames; gorilla allows one concurrent
	// writer only.
	writeMu sync.Mutex
	matchID string
}

// Dial opens the realtime socket using a session token obtained out of
// band.
func Dial(ctx context.Context, serverURL, token string, log *zap.Logger) (*Socket, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	q.Set("format", "protobuf")
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial realtime socket: %w", err)
	}
	return &Socket{log: log, conn: conn}, nil
}

// JoinMatch asks the server to add this session to a match. The resulting
// Match envelope in the read loop records the match id for sends.
func (s *Socket) JoinMatch(matchID string) error {
	env := &rtapi.Envelope{
		Cid: uuid.NewString(),
		Message: &rtapi.Envelope_MatchJoin{
			MatchJoin: &rtapi.MatchJoin{
				Id: &rtapi.MatchJoin_MatchId{MatchId: matchID},
			},
		},
	}
	return s.write(env)
}

// Run reads envelopes until the connection closes or ctx is cancelled.
// Match data is applied to the engine on this single goroutine, in
// arrival order, one notification to completion at a time — the ordering
// guarantee the reconciliation engine depends on.
func (s *Socket) Run(ctx context.Context, engine *app.Engine) error {
	defer s.conn.Close()

	go func() {
		<-ctx.Done()
		s.conn.Close()
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("realtime socket closed: %w", err)
		}

		var env rtapi.Envelope
		if err := proto.Unmarshal(data, &env); err != nil {
			s.log.Warn("dropping unparseable envelope", zap.Error(err))
			continue
		}

		switch msg := env.Message.(type) {
		case *rtapi.Envelope_MatchData:
			md := msg.MatchData
			engine.Apply(app.DecodeNotification(md.OpCode, md.Data))
		case *rtapi.Envelope_Match:
			s.writeMu.Lock()
			s.matchID = msg.Match.MatchId
			s.writeMu.Unlock()
			s.log.Info("joined match", zap.String("match_id", msg.Match.MatchId))
		case *rtapi.Envelope_Error:
			s.log.Warn("server error envelope",
				zap.Int32("code", msg.Error.Code),
				zap.String("message", msg.Error.Message))
		default:
			// Presence events and other envelope types carry nothing the
			// core tracks.
		}
	}
}

// Dispatch implements ports.Dispatcher: fire-and-forget match data send.
func (s *Socket) Dispatch(req ports.ActionRequest) error {
	s.writeMu.Lock()
	matchID := s.matchID
	s.writeMu.Unlock()
	if matchID == "" {
		return fmt.Errorf("cannot send %s: no match joined", req.Name)
	}

	env := &rtapi.Envelope{
		Cid: uuid.NewString(),
		Message: &rtapi.Envelope_MatchDataSend{
			MatchDataSend: &rtapi.MatchDataSend{
				MatchId: matchID,
				OpCode:  req.OpCode,
				Data:    req.Payload,
			},
		},
	}
	s.log.Debug("dispatching action", zap.String("action", req.Name), zap.Int64("op_code", req.OpCode))
	return s.write(env)
}

func (s *Socket) write(env *rtapi.Envelope) error {
	data, err := proto.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}
