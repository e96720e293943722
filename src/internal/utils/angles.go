package utils

// MinAngleBetween returns the signed difference in degrees of smallest
// magnitude that turns fromAngle into toAngle, accounting for wraparound at 360.
//
//	MinAngleBetween(350, 10) == 20
//	MinAngleBetween(10, 350) == -20
func MinAngleBetween(fromAngle, toAngle float32) float32 {
	direct := toAngle - fromAngle

	if toAngle < fromAngle {
		toAngle += 360
	} else {
		toAngle -= 360
	}
	wrapped := toAngle - fromAngle

	if Abs(direct) < Abs(wrapped) {
		return direct
	}
	return wrapped
}

// MinAngleVectorBetween applies MinAngleBetween to each component of a pair of Euler angle vectors.
func MinAngleVectorBetween(fromAngles, toAngles Vector3) Vector3 {
	return Vector3{
		X: MinAngleBetween(fromAngles.X, toAngles.X),
		Y: MinAngleBetween(fromAngles.Y, toAngles.Y),
		Z: MinAngleBetween(fromAngles.Z, toAngles.Z),
	}
}
