// Package webgl implements the client side of WebGL texture objects: the
// validation rules, the per-level and per-face image metadata, the mipmap
// and cube-map state machine, and the teardown protocol.
//
// # Overview
//
// A Texture never talks to the GPU. Every mutating call is validated
// against local state first; only on success is the state updated and a
// command sent to the executor over an ordered one-way channel (see
// package command). The executor applies commands in the order they were
// sent, so local state can be updated without waiting for it.
//
// Creating a texture is the only synchronous round-trip: the executor
// allocates the id and replies.
//
// # Quick Start
//
//	ch := command.NewChannel()
//	go executor.Serve(ctx, ch, executor.NewState())
//
//	gl := webgl.NewRenderingContext(ch)
//	tex, err := gl.CreateTexture()
//	if err != nil {
//	    return err
//	}
//	defer tex.Close()
//
//	_ = tex.Bind(webgl.Texture2D)
//	tex.Initialize(webgl.TexImage2D, 16, 16, 1, webgl.FormatRGBA, 0, webgl.DataTypeUnsignedByte)
//	_ = tex.GenerateMipmap()
//
// # Errors
//
// Validation failures are returned as Error values (ErrInvalidEnum,
// ErrInvalidValue, ErrInvalidOperation) and never abort. Calls that can
// only be reached through a programming error, such as addressing a face
// the texture does not have, panic.
//
// # Teardown
//
// Delete sends a must-deliver delete command and reports a delivery
// failure. Close is the owner's release path: it runs the teardown at most
// once and tolerates delivery failures. A texture attached to the bound
// framebuffer is detached from it before the delete command is sent.
package webgl
