package mapserver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/dymax/internal/dymax"
	"github.com/udisondev/dymax/internal/mapserver/clientpackets"
	"github.com/udisondev/dymax/internal/mapserver/serverpackets"
)

// Client packet opcodes
const (
	OpcodeConvertRequest     = 0x01
	OpcodeVertexPointRequest = 0x02
	OpcodeFaceOutlineRequest = 0x03
)

// Handler processes map projection packets. Singleton — один на сервер.
type Handler struct {
	table *dymax.Table
	conv  *dymax.Converter
}

// NewHandler creates a packet handler.
func NewHandler(table *dymax.Table, conv *dymax.Converter) *Handler {
	return &Handler{
		table: table,
		conv:  conv,
	}
}

// HandlePacket dispatches a packet to the appropriate handler.
// Writes response into buf. Returns: n — bytes written to buf (0 = nothing to send),
// ok — true if connection stays open (false = close after sending).
func (h *Handler) HandlePacket(remote string, data, buf []byte) (int, bool, error) {
	if len(data) == 0 {
		return 0, false, fmt.Errorf("empty packet data")
	}

	opcode := data[0]
	body := data[1:]

	switch opcode {
	case OpcodeConvertRequest:
		return h.handleConvert(remote, body, buf)
	case OpcodeVertexPointRequest:
		return h.handleVertexPoint(remote, body, buf)
	case OpcodeFaceOutlineRequest:
		return h.handleFaceOutline(remote, body, buf)
	default:
		slog.Warn("unknown map packet opcode", "opcode", fmt.Sprintf("0x%02X", opcode), "client", remote)
		n, ok := fail(buf, serverpackets.ReasonMalformed, fmt.Sprintf("unknown opcode 0x%02X", opcode))
		return n, ok, nil
	}
}

// fail writes a Fail packet. The stream stays framed, so the
// connection survives a rejected request.
func fail(buf []byte, reason byte, message string) (int, bool) {
	return serverpackets.Fail(buf, reason, message), true
}

// handleConvert processes opcode 0x01: lon/lat → unfolded map point.
func (h *Handler) handleConvert(remote string, data, buf []byte) (int, bool, error) {
	var req clientpackets.ConvertRequest
	if err := req.Parse(data); err != nil {
		slog.Warn("malformed ConvertRequest", "err", err, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonMalformed, err.Error())
		return n, ok, nil
	}

	// Longitude is unconstrained: the conversion wraps whatever it
	// gets, so only non-finite values are rejected. The latitude
	// comparison rejects NaN and infinities as well.
	if math.IsNaN(req.Lng) || math.IsInf(req.Lng, 0) {
		slog.Warn("longitude not finite", "lng", req.Lng, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonCoordinateRange, fmt.Sprintf("lng %v is not finite", req.Lng))
		return n, ok, nil
	}
	if !(req.Lat >= -90.0 && req.Lat <= 90.0) {
		slog.Warn("latitude out of range", "lat", req.Lat, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonCoordinateRange, fmt.Sprintf("lat %v out of range [-90, 90]", req.Lat))
		return n, ok, nil
	}

	var (
		p   dymax.Point
		lcd int
	)
	if req.WithLCD {
		p, lcd = h.conv.ConvertLCD(req.Lng, req.Lat)
	} else {
		p = h.conv.Convert(req.Lng, req.Lat)
	}

	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		slog.Error("projection degenerated", "lng", req.Lng, "lat", req.Lat, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonDegenerate, "projection degenerated")
		return n, ok, nil
	}

	slog.Debug("converted", "lng", req.Lng, "lat", req.Lat, "x", p.X, "y", p.Y, "client", remote)
	return serverpackets.ConvertResult(buf, p.X, p.Y, byte(lcd), req.WithLCD), true, nil
}

// handleVertexPoint processes opcode 0x02: icosahedron vertex → unfolded map point.
func (h *Handler) handleVertexPoint(remote string, data, buf []byte) (int, bool, error) {
	var req clientpackets.VertexPointRequest
	if err := req.Parse(data); err != nil {
		slog.Warn("malformed VertexPointRequest", "err", err, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonMalformed, err.Error())
		return n, ok, nil
	}

	if req.Vertex < 0 || req.Vertex >= dymax.VertexCount {
		slog.Warn("vertex out of range", "vertex", req.Vertex, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonIndexRange, fmt.Sprintf("vertex %d out of range", req.Vertex))
		return n, ok, nil
	}
	for _, ti := range req.Triple {
		if ti < 0 || ti >= dymax.VertexCount {
			slog.Warn("triple vertex out of range", "vertex", ti, "client", remote)
			n, ok := fail(buf, serverpackets.ReasonIndexRange, fmt.Sprintf("triple vertex %d out of range", ti))
			return n, ok, nil
		}
	}

	p := h.table.VertexToPlane(req.Vertex, req.Triple)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		slog.Error("vertex projection degenerated", "vertex", req.Vertex, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonDegenerate, "vertex projection degenerated")
		return n, ok, nil
	}

	slog.Debug("vertex placed", "vertex", req.Vertex, "x", p.X, "y", p.Y, "client", remote)
	return serverpackets.VertexPointResult(buf, p.X, p.Y), true, nil
}

// handleFaceOutline processes opcode 0x03: face index → closed outline ring.
func (h *Handler) handleFaceOutline(remote string, data, buf []byte) (int, bool, error) {
	var req clientpackets.FaceOutlineRequest
	if err := req.Parse(data); err != nil {
		slog.Warn("malformed FaceOutlineRequest", "err", err, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonMalformed, err.Error())
		return n, ok, nil
	}

	if req.Face < 0 || req.Face >= dymax.FaceCount {
		slog.Warn("face out of range", "face", req.Face, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonIndexRange, fmt.Sprintf("face %d out of range", req.Face))
		return n, ok, nil
	}
	if math.IsNaN(req.Push) || math.IsInf(req.Push, 0) {
		slog.Warn("push not finite", "push", req.Push, "client", remote)
		n, ok := fail(buf, serverpackets.ReasonCoordinateRange, fmt.Sprintf("push %v is not finite", req.Push))
		return n, ok, nil
	}

	points := h.table.FaceToQuad(req.Face, req.Push, req.Atomic)
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			slog.Error("face outline degenerated", "face", req.Face, "push", req.Push, "client", remote)
			n, ok := fail(buf, serverpackets.ReasonDegenerate, "face outline degenerated")
			return n, ok, nil
		}
	}

	slog.Debug("face outlined", "face", req.Face, "points", len(points), "client", remote)
	return serverpackets.FaceOutlineResult(buf, points), true, nil
}
