package http

import (
	"bufio"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Pipeline drives one request/response exchange per accepted
// connection: parse, route, handle, write, close. Failures are
// local to the connection and never terminate the process.
type Pipeline struct {
	dir     string
	logger  zerolog.Logger
	metrics *Metrics
}

func NewPipeline(dir string, logger zerolog.Logger, metrics *Metrics) Pipeline {
	return Pipeline{
		dir:     dir,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle processes a single connection and always closes it.
//
// Parse-failure policy: log one line, answer a best-effort bare 400
// status line, close. A failure writing that line is ignored.
func (p *Pipeline) Handle(conn net.Conn) {
	defer conn.Close()

	logger := p.logger.With().Str("conn", uuid.NewString()[:8]).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("connection handler panicked")
			p.writeResponse(conn, logger, "", NewResponse(StatusInternalServerError))
		}
	}()

	reader := bufio.NewReader(conn)
	req, err := ReadRequest(reader)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse request")
		p.metrics.parseFailed(err)
		p.writeResponse(conn, logger, "", NewResponse(StatusBadRequest))
		return
	}

	req.Logger = logger.With().Str("method", req.Method).Str("path", req.Path).Logger()

	handler := Route(req.Method, req.Path)
	res := handler(req, p.dir)

	p.writeResponse(conn, req.Logger, req.Method, res)
}

func (p *Pipeline) writeResponse(conn net.Conn, logger zerolog.Logger, method string, res Response) {
	if err := WriteResponse(conn, res); err != nil {
		logger.Error().Err(err).Msg("failed to write response")
		return
	}
	p.metrics.responseWritten(res.Status, method)
	logger.Debug().Int("status", res.Status).Msg("response written")
}
