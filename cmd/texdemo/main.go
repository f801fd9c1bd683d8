// Command texdemo runs a scripted texture session against an executor and
// prints what the executor applied.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/webgl"
	"github.com/gogpu/webgl/command"
	"github.com/gogpu/webgl/command/wire"
	"github.com/gogpu/webgl/executor"
)

func main() {
	var (
		executorName = flag.String("executor", executor.Default(), "executor to run ("+fmt.Sprint(executor.Available())+")")
		maxTextures  = flag.Int("max-textures", 0, "executor texture cap (0 = unlimited)")
		queue        = flag.Int("queue", command.DefaultQueueDepth, "command queue depth")
		trace        = flag.String("trace", "", "write the command stream to this file")
		textures     = flag.Int("textures", 4, "number of textures to create")
		cube         = flag.Bool("cube", false, "use cube maps instead of 2D textures")
		size         = flag.Uint("size", 256, "base level size in texels")
		verbose      = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		webgl.SetLogger(l)
		executor.SetLogger(l)
	}

	ex, err := executor.New(*executorName, executor.WithMaxTextures(*maxTextures))
	if err != nil {
		log.Fatalf("executor: %v", err)
	}

	ch := command.NewChannel(command.WithQueueDepth(*queue))
	var transport command.Transport = ch
	var tee *wire.Tee
	var tw *wire.Writer
	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			log.Fatalf("trace: %v", err)
		}
		defer f.Close()
		tw = wire.NewWriter(f)
		tee = wire.NewTee(ch, tw)
		transport = tee
	}

	s := script{
		count: *textures,
		cube:  *cube,
		size:  uint32(*size),
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return executor.Serve(ctx, ch, ex)
	})
	g.Go(func() error {
		defer ch.Close()
		return s.run(webgl.NewRenderingContext(transport))
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("session: %v", err)
	}

	printStats(ex.Stats())
	if tee != nil {
		if err := tee.Err(); err != nil {
			log.Printf("trace incomplete: %v", err)
		}
		fmt.Printf("traced %d commands to %s\n", tw.Frames(), *trace)
	}
}

type script struct {
	count int
	cube  bool
	size  uint32
}

// run creates the textures, fills and samples them, and tears them down,
// half explicitly and half through Close.
func (s script) run(gl *webgl.RenderingContext) error {
	target := webgl.Texture2D
	faces := []webgl.TexImageTarget{webgl.TexImage2D}
	if s.cube {
		target = webgl.TextureCubeMap
		faces = webgl.CubeFaces[:]
	}

	fb := gl.CreateFramebuffer()
	gl.BindFramebuffer(fb)

	var live []*webgl.Texture
	defer func() {
		for _, tex := range live {
			_ = tex.Close()
		}
	}()

	for i := 0; i < s.count; i++ {
		tex, err := gl.CreateTexture()
		if err != nil {
			log.Printf("texture %d: %v", i, err)
			continue
		}
		live = append(live, tex)

		if err := tex.Bind(target); err != nil {
			return fmt.Errorf("bind: %w", err)
		}
		for _, face := range faces {
			tex.Initialize(face, s.size, s.size, 1, webgl.FormatRGBA, 0, webgl.DataTypeUnsignedByte)
		}
		if err := tex.GenerateMipmap(); err != nil {
			log.Printf("texture %d: generate mipmap: %v", i, err)
		}
		_ = tex.TexParameter(webgl.TextureMinFilter, webgl.IntParameter(int32(webgl.LinearMipmapLinear)))
		_ = tex.TexParameter(webgl.TextureWrapS, webgl.IntParameter(int32(webgl.ClampToEdge)))
		_ = tex.TexParameter(webgl.TextureMaxAnisotropyEXT, webgl.FloatParameter(4))

		if i == 0 {
			if err := fb.AttachTexture(webgl.ColorAttachment0, faces[0], tex, 0); err != nil {
				return fmt.Errorf("attach: %w", err)
			}
			tex.SetAttachedToDOM()
			fmt.Printf("texture 0 mip chain: %s\n", formatChain(tex.MipChain(faces[0])))
		}
	}

	for i, tex := range live {
		if i%2 == 0 {
			if err := tex.Delete(); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatChain(chain []gputypes.Extent3D) string {
	parts := make([]string, len(chain))
	for i, e := range chain {
		parts[i] = fmt.Sprintf("%dx%d", e.Width, e.Height)
	}
	return strings.Join(parts, " ")
}

func printStats(st executor.Stats) {
	types := make([]command.CommandType, 0, len(st.Commands))
	for t := range st.Commands {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, t := range types {
		fmt.Printf("%-22s %d\n", t, st.Commands[t])
	}
	fmt.Printf("%-22s %d\n", "total", st.Total())
	fmt.Printf("%-22s %d\n", "failed", st.Failed)
	fmt.Printf("%-22s %d\n", "allocation failures", st.AllocationFailures)
	fmt.Printf("%-22s %d\n", "live textures", st.Live)
}
