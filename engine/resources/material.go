package resources

import (
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
)

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief Opaque reference to a material held by a registry. Shapes store
 * handles, never the material itself.
 */
type MaterialHandle struct {
	ID         uint32
	Generation uint32
}

// NoMaterial is the absent material.
var NoMaterial = MaterialHandle{ID: core.InvalidID, Generation: core.InvalidID}

// IsValid reports whether h refers to a slot at all; it says nothing about
// whether that slot is still live.
func (h MaterialHandle) IsValid() bool {
	return h.ID != core.InvalidID
}

/**
 * @brief Material configuration typically created in code to register a
 * material from.
 */
type MaterialConfig struct {
	/** @brief The name of the material. */
	Name string
	/** @brief The diffuse colour of the material. */
	DiffuseColour math.Vec4
	/** @brief The shininess of the material. */
	Shininess float32
	/** @brief The diffuse map name. */
	DiffuseMapName string
}

/**
 * @brief A material, which represents various properties
 * of a surface in the world such as texture, colour and shininess.
 */
type Material struct {
	/** @brief The handle the owning registry issued. */
	Handle MaterialHandle
	/** @brief The material name. */
	Name string
	/** @brief The diffuse colour. */
	DiffuseColour math.Vec4
	/** @brief The diffuse map name, empty if none. */
	DiffuseMapName string
	/** @brief The material shininess, determines how concentrated the specular lighting is. */
	Shininess float32
}
