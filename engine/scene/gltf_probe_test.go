package scene

import (
	"strconv"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyngine/dyngine/common"
)

const cameraGLTF = `{
  "asset": {"version": "2.0"},
  "nodes": [
    {
      "name": "camera_rig",
      "children": [1],
      "translation": [1.0, 2.0, 3.0],
      "rotation": [0.0, 0.0, 0.0, 1.0]
    },
    {"name": "camera_node", "camera": 0},
    {"name": "prop", "children": [3]},
    {"name": "prop_mesh"}
  ],
  "cameras": [
    {
      "name": "main",
      "type": "perspective",
      "perspective": {"yfov": 1.2217305, "znear": 0.05, "zfar": 500.0}
    }
  ]
}`

func TestLoadGLTFProbesCameras(t *testing.T) {
	state := NewStaticRenderState(&fakeDevice{}, &fakeQueue{})
	s, err := LoadGLTF(state, []byte(cameraGLTF))
	require.NoError(t, err)

	require.Len(t, s.Cameras(), 1)
	node, ok := GetNodeAs[*CameraRenderNode](s, s.Cameras()[0])
	require.True(t, ok)

	cam := node.Camera()
	assert.Equal(t, common.Vec3{1, 2, 3}, cam.Position())
	// Identity node rotation: direction is the negated up axis.
	assert.Equal(t, common.Vec3{0, -1, 0}, cam.Direction())
	assert.InDelta(t, 1.2217305, cam.Fov(), 1e-5)
	assert.InDelta(t, 0.05, cam.Near(), 1e-6)
	far, finite := cam.Far()
	assert.True(t, finite)
	assert.InDelta(t, 500.0, far, 1e-3)
	assert.Equal(t, float32(1), cam.Aspect())
}

func TestLoadGLTFRotatedRig(t *testing.T) {
	// Quarter turn around X maps +Y to +Z, so the camera looks down -Z.
	s := math32.Sin(math32.Pi / 4)
	c := math32.Cos(math32.Pi / 4)
	doc := `{
	  "asset": {"version": "2.0"},
	  "nodes": [
	    {"children": [1], "rotation": [` +
		formatFloat(s) + `, 0.0, 0.0, ` + formatFloat(c) + `]},
	    {"camera": 0}
	  ],
	  "cameras": [
	    {"type": "perspective", "perspective": {"yfov": 0.8, "znear": 0.1}}
	  ]
	}`

	state := NewStaticRenderState(&fakeDevice{}, &fakeQueue{})
	probed, err := LoadGLTF(state, []byte(doc))
	require.NoError(t, err)
	require.Len(t, probed.Cameras(), 1)

	node, _ := GetNodeAs[*CameraRenderNode](probed, probed.Cameras()[0])
	cam := node.Camera()
	assert.InDelta(t, 0.0, cam.Direction()[0], 1e-5)
	assert.InDelta(t, 0.0, cam.Direction()[1], 1e-5)
	assert.InDelta(t, -1.0, cam.Direction()[2], 1e-5)

	// Absent zfar selects the infinite far plane.
	_, finite := cam.Far()
	assert.False(t, finite)
}

func TestLoadGLTFRejectsNonPerspective(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "nodes": [
	    {"children": [1]},
	    {"camera": 0}
	  ],
	  "cameras": [
	    {"type": "orthographic"}
	  ]
	}`

	state := NewStaticRenderState(&fakeDevice{}, &fakeQueue{})
	_, err := LoadGLTF(state, []byte(doc))
	assert.ErrorContains(t, err, "orthographic")
}

func TestLoadGLTFIgnoresNonCameraNodes(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "nodes": [
	    {"children": [1, 2]},
	    {"camera": 0},
	    {}
	  ],
	  "cameras": [
	    {"type": "perspective", "perspective": {"yfov": 0.8, "znear": 0.1}}
	  ]
	}`

	// A parent with two children does not qualify, so no cameras are probed.
	state := NewStaticRenderState(&fakeDevice{}, &fakeQueue{})
	probed, err := LoadGLTF(state, []byte(doc))
	require.NoError(t, err)
	assert.Empty(t, probed.Cameras())
}

func TestLoadGLTFRejectsMalformedJSON(t *testing.T) {
	state := NewStaticRenderState(&fakeDevice{}, &fakeQueue{})
	_, err := LoadGLTF(state, []byte("{not json"))
	assert.Error(t, err)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
