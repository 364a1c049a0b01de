package cmd

import (
	"fmt"
	"math"

	overlay "github.com/arl/go-overlay"
)

func operationFromClass(class string) (overlay.Operation, error) {
	switch class {
	case "none", "":
		return overlay.OpNone, nil
	case "union":
		return overlay.OpUnion, nil
	case "intersection":
		return overlay.OpIntersection, nil
	case "blocked":
		return overlay.OpBlocked, nil
	case "continue":
		return overlay.OpContinue, nil
	default:
		return overlay.OpNone, fmt.Errorf("unknown operation class %q", class)
	}
}

func methodFromName(name string) (overlay.Method, error) {
	switch name {
	case "", "none":
		return overlay.MethodNone, nil
	case "crosses":
		return overlay.MethodCrosses, nil
	case "touches":
		return overlay.MethodTouches, nil
	case "touch_interior":
		return overlay.MethodTouchInterior, nil
	case "collinear":
		return overlay.MethodCollinear, nil
	case "equal":
		return overlay.MethodEqual, nil
	default:
		return overlay.MethodNone, fmt.Errorf("unknown method %q", name)
	}
}

func modeFromName(name string) (overlay.OperationMode, error) {
	switch name {
	case "", "union":
		return overlay.ModeUnion, nil
	case "intersection":
		return overlay.ModeIntersection, nil
	case "difference":
		return overlay.ModeDifference, nil
	default:
		return overlay.ModeUnion, fmt.Errorf("unknown operation mode %q", name)
	}
}

// buildTurns converts a scenario's YAML turn configs into the turn list the
// core operates on. Source 0's operation always comes from Op0, source 1's
// from Op1 (NewTurn fixes up source_index regardless).
func buildTurns(cfg scenarioConfig) ([]overlay.Turn, error) {
	turns := make([]overlay.Turn, 0, len(cfg.Turns))
	for i, tc := range cfg.Turns {
		method, err := methodFromName(tc.Method)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		op0, err := buildOperation(tc.Op0)
		if err != nil {
			return nil, fmt.Errorf("turn %d op0: %w", i, err)
		}
		op1, err := buildOperation(tc.Op1)
		if err != nil {
			return nil, fmt.Errorf("turn %d op1: %w", i, err)
		}
		point := overlay.NewPoint(tc.Point[0], tc.Point[1])
		turns = append(turns, overlay.NewTurn(point, method, op0, op1))
	}
	return turns, nil
}

func buildOperation(oc operationConf) (overlay.TurnOperation, error) {
	class, err := operationFromClass(oc.Class)
	if err != nil {
		return overlay.TurnOperation{}, err
	}
	denom := int64(oc.Fraction[1])
	if denom == 0 {
		denom = 1
	}
	return overlay.TurnOperation{
		SegID:     overlay.SegmentID{SegmentIndex: oc.Segment},
		Fraction:  overlay.NewSegmentRatio(int64(oc.Fraction[0]), denom),
		Operation: class,
	}, nil
}

// buildRing returns a synthesized closed ring geometry with n vertices
// spread evenly on a circle of radius 10, enough to exercise segment indices a
// scenario's turns reference.
func buildRing(n int) overlay.Geometry {
	if n < 3 {
		n = 3
	}
	points := make([]overlay.Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = overlay.NewPoint(float32(10*math.Cos(angle)), float32(10*math.Sin(angle)))
	}
	return overlay.NewRing(points)
}
