package domain

type BoundaryKind string

const (
	BoundaryMelting      BoundaryKind = "melting"
	BoundarySublimation  BoundaryKind = "sublimation"
	BoundaryVaporization BoundaryKind = "vaporization"
	BoundaryAntoine      BoundaryKind = "antoine"
)

type AxisScale string

const (
	ScaleLog    AxisScale = "log"
	ScaleLinear AxisScale = "linear"
)
