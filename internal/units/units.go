// Package units holds the physical constants and unit conversions shared by
// the performance and cost models.
package units

// G0 is standard gravity [m s^-2], used to convert specific impulse in
// seconds to effective exhaust velocity in m/s.
const G0 = 9.80665

// WYrToMillionUSD2018 converts TRANSCOST work-years to millions of 2018 US
// dollars.
const WYrToMillionUSD2018 = 0.3674

// KgPerMg converts megagrams (the cost CER mass unit) to kilograms (the
// performance model mass unit).
const KgPerMg = 1000.0
