// gltf_types.go contains the subset of the glTF 2.0 JSON schema the camera
// probe needs: the node hierarchy and camera definitions. Mesh, material, and
// animation structures are deliberately absent.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package scene

// gltfDocument represents the root of a glTF JSON document, reduced to the
// camera probe's needs.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-gltf
type gltfDocument struct {
	// Asset contains metadata about the glTF asset.
	Asset gltfAsset `json:"asset"`

	// Nodes is an array of nodes (transform hierarchy).
	Nodes []gltfNode `json:"nodes,omitempty"`

	// Cameras is an array of camera definitions referenced by nodes.
	Cameras []gltfCamera `json:"cameras,omitempty"`
}

// gltfAsset contains metadata about the glTF asset.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-asset
type gltfAsset struct {
	// Version is the glTF version (required, must be "2.0").
	Version string `json:"version"`
}

// gltfNode is a node in the transform hierarchy.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-node
type gltfNode struct {
	// Name is an optional node identifier.
	Name string `json:"name,omitempty"`

	// Children are indices of this node's child nodes.
	Children []int `json:"children,omitempty"`

	// Camera is the index of the camera referenced by this node.
	Camera *int `json:"camera,omitempty"`

	// Translation is the node's translation along x, y, z.
	Translation *[3]float32 `json:"translation,omitempty"`

	// Rotation is the node's unit quaternion rotation as [x, y, z, w].
	Rotation *[4]float32 `json:"rotation,omitempty"`
}

// gltfCamera is a camera definition.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-camera
type gltfCamera struct {
	// Name is an optional camera identifier.
	Name string `json:"name,omitempty"`

	// Type is "perspective" or "orthographic" (required).
	Type string `json:"type"`

	// Perspective holds the perspective projection parameters (when Type is "perspective").
	Perspective *gltfCameraPerspective `json:"perspective,omitempty"`
}

// gltfCameraPerspective holds a perspective projection's parameters.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-camera-perspective
type gltfCameraPerspective struct {
	// AspectRatio is the aspect ratio of the field of view.
	AspectRatio *float32 `json:"aspectRatio,omitempty"`

	// Yfov is the vertical field of view in radians (required).
	Yfov float32 `json:"yfov"`

	// Znear is the near clipping plane distance (required).
	Znear float32 `json:"znear"`

	// Zfar is the far clipping plane distance; absent means infinite.
	Zfar *float32 `json:"zfar,omitempty"`
}
