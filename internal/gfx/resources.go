package gfx

// Resources owns every GL object one scene draws with, so they can be
// released together.
type Resources struct {
	Program *Program
	Mesh    *MeshBuffers
	Texture *Texture
}

// Delete releases whatever the bundle holds. It is safe to call on a
// partly built bundle and more than once.
func (r *Resources) Delete() {
	if r.Texture != nil {
		r.Texture.Delete()
		r.Texture = nil
	}
	if r.Mesh != nil {
		r.Mesh.Delete()
		r.Mesh = nil
	}
	if r.Program != nil {
		r.Program.Delete()
		r.Program = nil
	}
}
