package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter receives uniform values by name.
type UniformSetter interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// Upload writes the whole light set to the lit shader.
// Point lights beyond MaxPointLights are dropped.
func Upload(u UniformSetter, set Set) {
	UploadDirectional(u, "dirLight", set.Directional)

	points := set.ActivePoints()
	for i, p := range points {
		UploadPoint(u, fmt.Sprintf("pointLights[%d]", i), p)
	}
	u.SetInt("numPointLights", int32(len(points)))

	if set.SpotEnabled {
		UploadSpot(u, "spotLight", set.Spot)
		u.SetInt("spotEnabled", 1)
	} else {
		u.SetInt("spotEnabled", 0)
	}
}

// UploadDirectional writes one directional light under prefix.
func UploadDirectional(u UniformSetter, prefix string, l DirectionalLight) {
	u.SetVec3(prefix+".direction", l.Direction)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
}

// UploadPoint writes one point light under prefix.
func UploadPoint(u UniformSetter, prefix string, l PointLight) {
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
	uploadAttenuation(u, prefix, l.Attenuation)
}

// UploadSpot writes one spot light under prefix. Cutoffs are sent as cosines.
func UploadSpot(u UniformSetter, prefix string, l SpotLight) {
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".direction", l.Direction)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
	u.SetFloat(prefix+".cutOff", cosDeg(l.CutOff))
	u.SetFloat(prefix+".outerCutOff", cosDeg(l.OuterCutOff))
	uploadAttenuation(u, prefix, l.Attenuation)
}

func uploadAttenuation(u UniformSetter, prefix string, a Attenuation) {
	u.SetFloat(prefix+".constant", a.Constant)
	u.SetFloat(prefix+".linear", a.Linear)
	u.SetFloat(prefix+".quadratic", a.Quadratic)
}
