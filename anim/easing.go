// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim implements the lumen tween scheduler: time-based
// property animations on tree nodes, shaped by a library of standard
// easing functions. Animations mutate node state and mark nodes dirty;
// the frame coordinator ticks the scheduler once per frame, before
// style resolution and layout.
package anim

import "github.com/lumen-ui/lumen/math32"

// Easing names a progress-shaping curve: a pure mapping of normalized
// progress [0, 1] to eased progress. Overshoot easings (back, elastic)
// may leave [0, 1] in between but always hit 0 at 0 and 1 at 1.
type Easing int32

const (
	Linear Easing = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	SineIn
	SineOut
	SineInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
	ElasticIn
	ElasticOut
	ElasticInOut
)

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return "invalid"
}

var easingNames = []string{
	"linear",
	"quad-in", "quad-out", "quad-in-out",
	"cubic-in", "cubic-out", "cubic-in-out",
	"quart-in", "quart-out", "quart-in-out",
	"sine-in", "sine-out", "sine-in-out",
	"expo-in", "expo-out", "expo-in-out",
	"back-in", "back-out", "back-in-out",
	"bounce-in", "bounce-out", "bounce-in-out",
	"elastic-in", "elastic-out", "elastic-in-out",
}

// Func returns the easing function. Unknown values ease linearly.
func (e Easing) Func() func(t float32) float32 {
	if int(e) < len(easingFuncs) {
		return easingFuncs[e]
	}
	return easeLinear
}

// standard closed-form constants
const (
	backC1   = 1.70158
	backC2   = backC1 * 1.525
	backC3   = backC1 + 1
	elasticC = 2 * math32.Pi / 3
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

func easeLinear(t float32) float32 { return t }

func quadIn(t float32) float32  { return t * t }
func quadOut(t float32) float32 { return 1 - (1-t)*(1-t) }
func quadInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math32.Pow(-2*t+2, 2)/2
}

func cubicIn(t float32) float32  { return t * t * t }
func cubicOut(t float32) float32 { return 1 - math32.Pow(1-t, 3) }
func cubicInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}

func quartIn(t float32) float32  { return t * t * t * t }
func quartOut(t float32) float32 { return 1 - math32.Pow(1-t, 4) }
func quartInOut(t float32) float32 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 4)/2
}

func sineIn(t float32) float32    { return 1 - math32.Cos(t*math32.Pi/2) }
func sineOut(t float32) float32   { return math32.Sin(t * math32.Pi / 2) }
func sineInOut(t float32) float32 { return -(math32.Cos(math32.Pi*t) - 1) / 2 }

func expoIn(t float32) float32 {
	if t == 0 {
		return 0
	}
	return math32.Pow(2, 10*t-10)
}
func expoOut(t float32) float32 {
	if t == 1 {
		return 1
	}
	return 1 - math32.Pow(2, -10*t)
}
func expoInOut(t float32) float32 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math32.Pow(2, 20*t-10) / 2
	}
	return (2 - math32.Pow(2, -20*t+10)) / 2
}

func backIn(t float32) float32 { return backC3*t*t*t - backC1*t*t }
func backOut(t float32) float32 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}
func backInOut(t float32) float32 {
	if t < 0.5 {
		return math32.Pow(2*t, 2) * ((backC2+1)*2*t - backC2) / 2
	}
	return (math32.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
}

func bounceOut(t float32) float32 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	}
	t -= 2.625 / bounceD1
	return bounceN1*t*t + 0.984375
}
func bounceIn(t float32) float32 { return 1 - bounceOut(1-t) }
func bounceInOut(t float32) float32 {
	if t < 0.5 {
		return (1 - bounceOut(1-2*t)) / 2
	}
	return (1 + bounceOut(2*t-1)) / 2
}

func elasticIn(t float32) float32 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math32.Pow(2, 10*t-10) * math32.Sin((10*t-10.75)*elasticC)
}
func elasticOut(t float32) float32 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math32.Pow(2, -10*t)*math32.Sin((10*t-0.75)*elasticC) + 1
}
func elasticInOut(t float32) float32 {
	const c = 2 * math32.Pi / 4.5
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -math32.Pow(2, 20*t-10) * math32.Sin((20*t-11.125)*c) / 2
	}
	return math32.Pow(2, -20*t+10)*math32.Sin((20*t-11.125)*c)/2 + 1
}

var easingFuncs = []func(float32) float32{
	easeLinear,
	quadIn, quadOut, quadInOut,
	cubicIn, cubicOut, cubicInOut,
	quartIn, quartOut, quartInOut,
	sineIn, sineOut, sineInOut,
	expoIn, expoOut, expoInOut,
	backIn, backOut, backInOut,
	bounceIn, bounceOut, bounceInOut,
	elasticIn, elasticOut, elasticInOut,
}
