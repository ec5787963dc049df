package scene

import (
	"encoding/json"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine/camera"
)

// LoadGLTF builds a RenderScene from a glTF JSON document, probing it for
// cameras only: every node whose single child references a perspective camera
// contributes one camera render node, positioned at the parent node's
// translation and looking along the negated rotated up axis. All other glTF
// content is ignored.
//
// A referenced camera with a non-perspective projection is fatal to the probe.
//
// Parameters:
//   - state: the shared GPU context the new scene owns
//   - gltfBytes: the glTF JSON document
//
// Returns:
//   - *RenderScene: the scene holding the probed camera nodes
//   - error: error when the document fails to parse or a probed camera is unsupported
func LoadGLTF(state *StaticRenderState, gltfBytes []byte) (*RenderScene, error) {
	var doc gltfDocument
	if err := json.Unmarshal(gltfBytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse glTF document: %w", err)
	}

	upAxis := common.Vec3{0, 1, 0}
	renderScene := NewRenderScene(state)

	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if len(node.Children) != 1 {
			continue
		}
		childIndex := node.Children[0]
		if childIndex < 0 || childIndex >= len(doc.Nodes) {
			return nil, fmt.Errorf("glTF node %d references missing child %d", i, childIndex)
		}
		child := &doc.Nodes[childIndex]
		if child.Camera == nil {
			continue
		}
		if *child.Camera < 0 || *child.Camera >= len(doc.Cameras) {
			return nil, fmt.Errorf("glTF node %d references missing camera %d", childIndex, *child.Camera)
		}
		gltfCam := &doc.Cameras[*child.Camera]
		if gltfCam.Type != "perspective" || gltfCam.Perspective == nil {
			return nil, fmt.Errorf("unsupported camera projection %q", gltfCam.Type)
		}

		persp := gltfCam.Perspective
		fovDegrees := persp.Yfov * (180.0 / math32.Pi)

		rotation := common.QuatIdentity()
		if node.Rotation != nil {
			rotation = common.Quat(*node.Rotation)
		}
		direction := rotation.Rotate(upAxis).Scale(-1)

		position := common.Vec3{}
		if node.Translation != nil {
			position = common.Vec3(*node.Translation)
		}

		options := []camera.BuilderOption{
			camera.WithPosition(position),
			camera.WithDirection(direction),
			camera.WithForwardAxis(direction.Normalize()),
			camera.WithUpAxis(upAxis),
			camera.WithFovDegrees(fovDegrees),
			camera.WithNear(persp.Znear),
			camera.WithAspect(1.0),
		}
		if persp.Zfar != nil {
			options = append(options, camera.WithFar(*persp.Zfar))
		} else {
			options = append(options, camera.WithInfiniteFar())
		}

		if _, err := AddNew(camera.New(options...), renderScene); err != nil {
			return nil, fmt.Errorf("failed to add probed camera node: %w", err)
		}
	}

	return renderScene, nil
}
