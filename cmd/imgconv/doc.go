// Command imgconv filters a single still image and writes the result,
// converting between PPM and BMP when the extensions differ.
//
//	imgconv photo.bmp grey.bmp
//	imgconv -kernel kuwahara -size 5 in.ppm out.bmp
//
// Without -kernel, PPM input is converted with the Rec. 601 grayscale
// weights and BMP input with the luminosity weights.
package main
