package photometry

// Native derives the intensity the renderer consumes from an authored value,
// before exposure: candela for punctual lights, lux for directional lights and
// luminance for area lights.
func Native(shape Shape, unit Unit, value float64, g Geometry) float64 {
	switch {
	case unit == Lumen && shape.IsArea():
		return AreaLumenToLuminance(shape, g.AreaWidth, g.AreaHeight, value)
	case unit == Lumen && shape != ShapeDirectional:
		return PunctualLumenToCandela(shape, value, g)
	case unit == Ev100:
		return Ev100ToLuminance(value)
	case unit == Lux && (shape == ShapePoint || shape == ShapeSpot):
		return LuxToCandela(value, g.Distance)
	}
	// Candela, nits and directional lux already match the renderer.
	return linear(value)
}
