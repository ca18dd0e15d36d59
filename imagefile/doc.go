// Package imagefile reads and writes single still images in the containers
// used by the conversion utilities, PPM (P6) and 24-bit BMP, and converts
// them to and from the canonical frame.Buffer layout.
//
// BMP files store rows bottom-up in B,G,R order with each row padded to
// four bytes. All of that is undone on load, so a loaded buffer is always
// top-down, R,G,B and unpadded like every other frame.
//
//	buf, err := imagefile.Load("photo.bmp")
//	if err != nil {
//	    return err
//	}
//	k, _ := filter.Parse(imagefile.DefaultKernel("photo.bmp"), 0)
//	out, _, err := filter.Apply(k, buf, nil)
//	err = imagefile.Save("grey.bmp", out)
package imagefile
