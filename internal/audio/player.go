package audio

import (
	"log"

	"github.com/gordonklaus/portaudio"
)

// Player streams a Synth to the default output device.
type Player struct {
	stream *portaudio.Stream
}

// Start opens an output-only stereo stream. Duplex streams often fail on
// Linux when the input and output devices differ.
func Start(s *Synth) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.Render)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}

	log.Printf("audio: streaming at %d Hz", SampleRate)
	return &Player{stream: stream}, nil
}

func (p *Player) Stop() error {
	if p == nil || p.stream == nil {
		return nil
	}
	err := p.stream.Stop()
	if cerr := p.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	p.stream = nil
	return err
}
