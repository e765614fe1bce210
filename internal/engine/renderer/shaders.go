package renderer

// solidVertexShader places face-local geometry with a per-node model matrix.
const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;
uniform mat4 uModel;

void main() {
    gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const solidFragmentShader = `
#version 410 core

uniform vec4 uColor;
uniform float uOpacity;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor.rgb, uColor.a * uOpacity);
}
`

// overlayVertexShader draws a full-screen quad given in NDC.
const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const overlayFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vTexCoord);
}
`
