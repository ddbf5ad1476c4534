// Package meshpack encodes whole meshes into UTF-8 safe payloads.
//
// A payload is laid out as:
//
//	[6 AABB codes, optional] [8*N attribute codes, channel-major] [M index deltas]
//
// The decoder must know whether the AABB is present and the vertex and index
// counts; the payload does not record them.
package meshpack

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/compress"
	"github.com/Faultbox/textmesh/pkg/utf8enc"
)

// Mesh is one draw batch ready for encoding. Indices must already be in
// vertex-cache order.
type Mesh struct {
	Name    string
	Attribs compress.AttribList
	Indices compress.OptimizedIndexList
	Bounds  *compress.Bounds // Encoded first when set
}

// Stats reports the sizes of one encoded mesh.
type Stats struct {
	Vertices    int
	Indices     int
	Bytes       int
	BoundsBytes int
	AttribBytes int
	IndexBytes  int
}

// BytesPerVertex returns the average payload cost per vertex.
func (s Stats) BytesPerVertex() float64 {
	if s.Vertices == 0 {
		return 0
	}
	return float64(s.Bytes) / float64(s.Vertices)
}

// Encoder runs the quantize and compress stages for meshes. It holds no
// per-mesh state and may be shared as long as each call uses its own sink.
type Encoder struct {
	cfg *config.Config
	log *zap.Logger
}

// Setup loads the configuration, initializes logging from it and returns
// an Encoder using both.
func Setup() (*Encoder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.Info("encoder configured",
		zap.Uint16("position_max", cfg.Quantization.PositionMax),
		zap.Uint16("aabb_max", cfg.Quantization.AABBMax),
		zap.Int("max_bytes", cfg.Output.MaxBytes))
	logger.Sugar.Debugf("config: %+v", *cfg)
	return NewEncoder(cfg, nil)
}

// NewEncoder creates an Encoder. A nil log uses the global logger.
func NewEncoder(cfg *config.Config, log *zap.Logger) (*Encoder, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("encoder config: %w", err)
	}
	if log == nil {
		log = logger.Named("meshpack")
	}
	return &Encoder{cfg: cfg, log: log}, nil
}

// Encode writes mesh to sink using params for attribute quantization and,
// if mesh.Bounds is set, as the global reference for the box.
func (e *Encoder) Encode(mesh Mesh, params *compress.BoundsParams, sink utf8enc.ByteSink) (Stats, error) {
	log := e.log.With(zap.String("mesh", mesh.Name))
	stats := Stats{
		Vertices: mesh.Attribs.VertexCount(),
		Indices:  len(mesh.Indices),
	}
	log.Debug("encoding mesh",
		zap.Int("vertices", stats.Vertices),
		zap.Int("indices", stats.Indices),
		zap.Bool("bounds", mesh.Bounds != nil))

	counter := &utf8enc.CountingSink{Inner: sink}
	err := e.encode(mesh, params, counter, &stats)
	stats.Bytes = counter.Count
	if err != nil {
		log.Warn("mesh encode failed",
			zap.Int("bytes_written", stats.Bytes),
			zap.Bool("contract_violation", errors.Is(err, compress.ErrContractViolation)),
			zap.Error(err))
		return stats, fmt.Errorf("encoding mesh %q: %w", mesh.Name, err)
	}

	log.Debug("encoded mesh",
		zap.Int("bytes", stats.Bytes),
		zap.Int("bounds_bytes", stats.BoundsBytes),
		zap.Int("attrib_bytes", stats.AttribBytes),
		zap.Int("index_bytes", stats.IndexBytes),
		zap.Float64("bytes_per_vertex", stats.BytesPerVertex()))
	return stats, nil
}

func (e *Encoder) encode(mesh Mesh, params *compress.BoundsParams, counter *utf8enc.CountingSink, stats *Stats) error {
	// Checked before writing so a bad batch leaves the sink untouched.
	for i, idx := range mesh.Indices {
		if idx < 0 || idx >= stats.Vertices {
			return &compress.ContractError{
				Op:     "encode mesh",
				Reason: fmt.Sprintf("index %d at position %d out of range for %d vertices", idx, i, stats.Vertices),
			}
		}
	}

	var quantized compress.QuantizedAttribList
	if err := compress.AttribsToQuantizedAttribs(mesh.Attribs, params, &quantized); err != nil {
		return err
	}

	if mesh.Bounds != nil {
		start := counter.Count
		if err := compress.CompressAABBToUtf8Range(*mesh.Bounds, params, e.cfg.Quantization.AABBMax, counter); err != nil {
			return err
		}
		stats.BoundsBytes = counter.Count - start
	}

	start := counter.Count
	if err := compress.CompressQuantizedAttribsToUtf8(quantized, counter); err != nil {
		return err
	}
	stats.AttribBytes = counter.Count - start

	start = counter.Count
	if _, err := compress.CompressIndicesToUtf8(mesh.Indices, counter); err != nil {
		return err
	}
	stats.IndexBytes = counter.Count - start
	return nil
}

// EncodeToBytes encodes mesh into a new payload, honoring the configured
// size limit and validating the result when configured to.
func (e *Encoder) EncodeToBytes(mesh Mesh, params *compress.BoundsParams) ([]byte, Stats, error) {
	sink := &utf8enc.SliceSink{Limit: e.cfg.Output.MaxBytes}
	stats, err := e.Encode(mesh, params, sink)
	if err != nil {
		return nil, stats, err
	}
	if e.cfg.Output.Validate {
		if err := utf8enc.Validate(sink.Bytes()); err != nil {
			return nil, stats, fmt.Errorf("encoding mesh %q: %w", mesh.Name, err)
		}
	}
	return sink.Bytes(), stats, nil
}
