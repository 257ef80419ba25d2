// Package rockphys derives elastic rock properties from well logs.
//
// Velocities are in km/s when sonic slowness is given in µs/ft. The
// Greenberg-Castagna shear-velocity estimate blends the sandstone and shale
// linear trends twice, once harmonically and once arithmetically, and
// averages the two.
//
// Series estimators never abort on numeric degeneracies. They fill every
// output sample, letting NaN or an infinity stand where the formula is
// undefined, and report the affected samples in a [core.DomainError]. Only
// malformed input, such as series of different lengths, yields a nil result.
package rockphys
