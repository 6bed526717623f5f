package raster

// BlendMode is a Porter-Duff style compositing operator.
type BlendMode uint8

const (
	// BlendSourceOver composites the source over the destination.
	BlendSourceOver BlendMode = iota

	// BlendPlus adds source and destination, clamped to 255 ("lighter").
	BlendPlus
)

// blendFunc combines premultiplied source and destination channels.
type blendFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// blendFor returns the compositing function for mode.
// Unknown modes fall back to source-over.
func blendFor(mode BlendMode) blendFunc {
	if mode == BlendPlus {
		return blendPlus
	}
	return blendSourceOver
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendPlus adds source and destination colors.
// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values, clamping at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
