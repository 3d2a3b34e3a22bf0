// Package catalog holds the fixed list of released TIPS checkpoints and the
// storage URLs of their artifacts.
package catalog

const (
	// BaseURL is the storage prefix for the PyTorch checkpoint exports.
	BaseURL = "https://storage.googleapis.com/tips_data/v1_0/checkpoints/pytorch/"

	// TokenizerURL is the shared sentencepiece tokenizer used by every checkpoint.
	TokenizerURL = "https://storage.googleapis.com/tips_data/v1_0/checkpoints/tokenizer.model"

	visionSuffix = "_vision.npz"
	textSuffix   = "_text.npz"
)

// Checkpoint describes one released model variant. Every checkpoint ships as
// a vision/text weight pair; the encoder fields mirror the vision tower
// configuration the weights were exported from.
type Checkpoint struct {
	Name       string `json:"name"       yaml:"name"`
	Arch       string `json:"arch"       yaml:"arch"`
	EmbedDim   int    `json:"embed_dim"  yaml:"embed_dim"`
	Depth      int    `json:"depth"      yaml:"depth"`
	Heads      int    `json:"heads"      yaml:"heads"`
	PatchSize  int    `json:"patch_size" yaml:"patch_size"`
	Resolution string `json:"resolution" yaml:"resolution"`
	Distilled  bool   `json:"distilled"  yaml:"distilled"`
}

// Checkpoints is the fixed release list. The order is significant only for
// fetch ordering: downloads happen in this order, smallest variant first.
var Checkpoints = []Checkpoint{
	{
		Name:       "tips_oss_s14_highres_distilled",
		Arch:       "ViT-S/14",
		EmbedDim:   384,
		Depth:      12,
		Heads:      6,
		PatchSize:  14,
		Resolution: "highres",
		Distilled:  true,
	},
	{
		Name:       "tips_oss_b14_highres_distilled",
		Arch:       "ViT-B/14",
		EmbedDim:   768,
		Depth:      12,
		Heads:      12,
		PatchSize:  14,
		Resolution: "highres",
		Distilled:  true,
	},
	{
		Name:       "tips_oss_l14_highres_distilled",
		Arch:       "ViT-L/14",
		EmbedDim:   1024,
		Depth:      24,
		Heads:      16,
		PatchSize:  14,
		Resolution: "highres",
		Distilled:  true,
	},
	{
		Name:       "tips_oss_so400m14_highres_largetext_distilled",
		Arch:       "ViT-So400m/14",
		EmbedDim:   1152,
		Depth:      27,
		Heads:      16,
		PatchSize:  14,
		Resolution: "highres",
		Distilled:  true,
	},
	{
		Name:       "tips_oss_g14_lowres",
		Arch:       "ViT-g/14",
		EmbedDim:   1536,
		Depth:      40,
		Heads:      24,
		PatchSize:  14,
		Resolution: "lowres",
	},
	{
		Name:       "tips_oss_g14_highres",
		Arch:       "ViT-g/14",
		EmbedDim:   1536,
		Depth:      40,
		Heads:      24,
		PatchSize:  14,
		Resolution: "highres",
	},
}

// VisionURL returns the storage URL of the checkpoint's vision encoder weights.
func (c Checkpoint) VisionURL() string {
	return BaseURL + c.Name + visionSuffix
}

// TextURL returns the storage URL of the checkpoint's text encoder weights.
func (c Checkpoint) TextURL() string {
	return BaseURL + c.Name + textSuffix
}

// Lookup finds a checkpoint by identifier.
func Lookup(name string) (Checkpoint, bool) {
	for _, c := range Checkpoints {
		if c.Name == name {
			return c, true
		}
	}
	return Checkpoint{}, false
}

// DownloadPlan returns every artifact URL in fetch order: the tokenizer
// first, then the vision and text weights for each checkpoint in list order.
func DownloadPlan() []string {
	urls := make([]string, 0, 2*len(Checkpoints)+1)
	urls = append(urls, TokenizerURL)
	for _, c := range Checkpoints {
		urls = append(urls, c.VisionURL(), c.TextURL())
	}
	return urls
}
